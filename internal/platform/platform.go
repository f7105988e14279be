// Package platform probes the host for the device metadata optionally
// attached to log entries. Probe failures degrade to omission; they
// never surface to logging callers.
package platform

// Info identifies the host emitting log entries.
type Info struct {
	Platform string
	Version  string
}

// Probe returns the host platform name and OS version. The second
// return value is false when the metadata could not be determined.
func Probe() (Info, bool) {
	return probe()
}
