package logging

import (
	"encoding/json"
	"fmt"
)

// formatData renders an attached payload for console and export lines.
// JSON keeps structured payloads readable on one line; anything that
// cannot be serialized falls back to fmt.
func formatData(v any) string {
	if v == nil {
		return ""
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}
