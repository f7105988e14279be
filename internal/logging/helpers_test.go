package logging

import (
	"time"

	"logship/internal/config"
)

// testConfig returns a fully enabled configuration with no remote
// endpoint; individual tests override what they exercise.
func testConfig() config.Config {
	return config.Config{
		AppName:          "logship-test",
		MinLevel:         "debug",
		IncludeTimestamp: true,
		Console:          config.Console{Enabled: true},
		Storage:          config.Storage{Enabled: true, MaxStoredLogs: 100},
		Remote:           config.Remote{Enabled: false, MinLevel: "debug", RequestTimeout: 2},
	}
}

func testEntry(level Level, message, contextLabel string) Entry {
	return Entry{
		Timestamp: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Level:     level,
		Message:   message,
		Context:   contextLabel,
	}
}
