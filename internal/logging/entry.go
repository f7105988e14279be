package logging

import (
	"encoding/json"
	"time"
)

// timestampLayout is RFC 3339 with fixed millisecond precision. Both
// the remote wire payload and the stored sequence use this form.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DeviceInfo describes the host emitting an entry.
type DeviceInfo struct {
	Platform string `json:"platform"`
	Version  string `json:"version"`
}

// Entry is one captured log event. Entries are immutable once built:
// the formatter stamps them and every sink thereafter works on its own
// copy or serialized form.
type Entry struct {
	Timestamp  time.Time
	Level      Level
	Message    string
	Context    string
	Data       any
	DeviceInfo *DeviceInfo
}

type entryJSON struct {
	Timestamp  string          `json:"timestamp"`
	Level      Level           `json:"level"`
	Message    string          `json:"message"`
	Context    string          `json:"context"`
	Data       json.RawMessage `json:"data,omitempty"`
	DeviceInfo *DeviceInfo     `json:"deviceInfo,omitempty"`
}

// MarshalJSON renders the entry in the shared wire/storage shape. The
// data field is present only when a payload was attached at the call
// site; a payload that cannot be serialized is dropped rather than
// failing the whole entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Timestamp:  e.Timestamp.Format(timestampLayout),
		Level:      e.Level,
		Message:    e.Message,
		Context:    e.Context,
		DeviceInfo: e.DeviceInfo,
	}
	if e.Data != nil {
		if raw, err := json.Marshal(e.Data); err == nil {
			out.Data = raw
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores an entry from its stored form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var in entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ts, err := time.Parse(timestampLayout, in.Timestamp)
	if err != nil {
		ts, err = time.Parse(time.RFC3339Nano, in.Timestamp)
		if err != nil {
			return err
		}
	}
	e.Timestamp = ts
	e.Level = in.Level
	e.Message = in.Message
	e.Context = in.Context
	e.DeviceInfo = in.DeviceInfo
	e.Data = nil
	if len(in.Data) > 0 {
		var payload any
		if err := json.Unmarshal(in.Data, &payload); err == nil {
			e.Data = payload
		}
	}
	return nil
}
