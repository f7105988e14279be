//go:build linux || darwin

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func probe() (Info, bool) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Info{}, false
	}
	return Info{
		Platform: runtime.GOOS,
		Version:  utsField(uts.Release[:]),
	}, true
}

func utsField(raw []byte) string {
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
