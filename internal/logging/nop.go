package logging

import (
	"io"

	"logship/internal/config"
)

// NewNop returns a logger that accepts calls and discards everything.
// Useful for wiring code and tests that need a Logger but no output.
func NewNop() *Logger {
	cfg := config.Config{
		AppName:  "nop",
		MinLevel: "none",
		Remote:   config.Remote{MinLevel: "none"},
	}
	return New(config.NewCell(cfg), WithFallbackWriter(io.Discard))
}
