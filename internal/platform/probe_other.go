//go:build !linux && !darwin

package platform

import "runtime"

func probe() (Info, bool) {
	return Info{Platform: runtime.GOOS}, true
}
