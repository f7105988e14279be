package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"logship/internal/config"
)

// consoleTimeLayout is the local-time prefix on console lines.
const consoleTimeLayout = "15:04:05"

// ConsoleWriters maps each severity to its own output channel so host
// tooling can filter by stream. Nil fields fall back to the defaults
// (debug/info on stdout, warn/error on stderr).
type ConsoleWriters struct {
	Debug io.Writer
	Info  io.Writer
	Warn  io.Writer
	Error io.Writer
}

func defaultConsoleWriters() ConsoleWriters {
	return ConsoleWriters{
		Debug: os.Stdout,
		Info:  os.Stdout,
		Warn:  os.Stderr,
		Error: os.Stderr,
	}
}

// ConsoleSink writes entries synchronously in a human-readable line
// format. It applies the shared minimum level independently of the
// orchestrator and swallows write failures: console trouble must never
// reach the logging caller.
type ConsoleSink struct {
	cell    *config.Cell
	mu      sync.Mutex
	writers ConsoleWriters
}

// NewConsoleSink builds a console sink over the shared configuration.
func NewConsoleSink(cell *config.Cell, writers ConsoleWriters) *ConsoleSink {
	defaults := defaultConsoleWriters()
	if writers.Debug == nil {
		writers.Debug = defaults.Debug
	}
	if writers.Info == nil {
		writers.Info = defaults.Info
	}
	if writers.Warn == nil {
		writers.Warn = defaults.Warn
	}
	if writers.Error == nil {
		writers.Error = defaults.Error
	}
	return &ConsoleSink{cell: cell, writers: writers}
}

// Emit writes one line for the entry when console output is enabled
// and the entry passes the configured threshold.
func (s *ConsoleSink) Emit(entry Entry) {
	cfg := s.cell.Snapshot()
	if !cfg.Console.Enabled {
		return
	}
	if !ShouldEmit(entry.Level, LevelOrDefault(cfg.MinLevel, LevelInfo)) {
		return
	}

	var line strings.Builder
	if cfg.IncludeTimestamp {
		line.WriteString(entry.Timestamp.Local().Format(consoleTimeLayout))
		line.WriteByte(' ')
	}
	line.WriteString(entry.Level.Label())
	line.WriteByte(' ')
	line.WriteByte('[')
	line.WriteString(entry.Context)
	line.WriteByte(']')
	line.WriteByte(' ')
	line.WriteString(entry.Message)
	if entry.Data != nil {
		line.WriteByte(' ')
		line.WriteString(formatData(entry.Data))
	}
	line.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.writer(entry.Level), line.String())
}

func (s *ConsoleSink) writer(level Level) io.Writer {
	switch level {
	case LevelDebug:
		return s.writers.Debug
	case LevelInfo:
		return s.writers.Info
	case LevelWarn:
		return s.writers.Warn
	default:
		return s.writers.Error
	}
}
