package logging

import (
	"fmt"
	"strings"
)

// Level is a log severity. The ordering is total and fixed:
// debug < info < warn < error < none. LevelNone is only valid as a
// threshold; it is never assigned to an entry, so a sink configured
// with LevelNone accepts nothing.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Rank returns the integer position of the level in the severity ordering.
func (l Level) Rank() int { return int(l) }

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Label returns the uppercase tag used in console and export lines.
func (l Level) Label() string {
	return strings.ToUpper(l.String())
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their lowercase names in JSON payloads and stored sequences.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, ok := ParseLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown log level %q", string(text))
	}
	*l = parsed
	return nil
}

// ParseLevel maps a level name to its Level. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "none":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

// LevelOrDefault parses value, falling back to def when the value is
// empty or unrecognized.
func LevelOrDefault(value string, def Level) Level {
	if parsed, ok := ParseLevel(value); ok {
		return parsed
	}
	return def
}

// ShouldEmit reports whether an entry at level passes the sink
// threshold. The comparison is pure rank ordering; every sink applies
// it independently against its own configured threshold.
func ShouldEmit(level, threshold Level) bool {
	return level.Rank() >= threshold.Rank()
}
