package logging

import (
	"time"

	"logship/internal/config"
	"logship/internal/platform"
)

// formatter builds immutable entries from call-site inputs and the
// current configuration snapshot. The device probe is injectable so
// tests can pin the metadata.
type formatter struct {
	probe func() (platform.Info, bool)
	now   func() time.Time
}

func newFormatter() *formatter {
	return &formatter{probe: platform.Probe, now: time.Now}
}

// format stamps the current wall-clock time at millisecond precision
// and copies the inputs into a new entry. The data payload is attached
// only when the call site actually supplied one; device metadata is
// attached only when enabled and available.
func (f *formatter) format(cfg config.Config, level Level, message, contextLabel string, data any, hasData bool) Entry {
	entry := Entry{
		Timestamp: f.now().Truncate(time.Millisecond),
		Level:     level,
		Message:   message,
		Context:   contextLabel,
	}
	if hasData {
		entry.Data = data
	}
	if cfg.IncludeDeviceInfo {
		if info, ok := f.probe(); ok {
			entry.DeviceInfo = &DeviceInfo{Platform: info.Platform, Version: info.Version}
		}
	}
	return entry
}
