package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"logship/internal/config"
	"logship/internal/kv"
)

// Logger is the public logging surface. Every leveled call is gated on
// the shared minimum level, formatted into an immutable entry, and
// fanned out to the console sink (synchronously) and to the durable
// store and remote uploader (through the background worker). No
// failure in any sink ever reaches the caller.
//
// Derived loggers from WithContext share the configuration cell, the
// sinks, and the worker; only the context label differs.
type Logger struct {
	cell      *config.Cell
	context   string
	formatter *formatter
	console   *ConsoleSink
	store     *DurableStore
	remote    *RemoteUploader
	worker    *worker
}

type loggerOptions struct {
	store           kv.Store
	consoleWriters  ConsoleWriters
	fallback        io.Writer
	uploaderOptions []UploaderOption
	queueSize       int
}

// Option adjusts logger construction.
type Option func(*loggerOptions)

// WithKVStore supplies the persistence collaborator backing the
// durable store. Without one, stored-log operations are no-ops.
func WithKVStore(store kv.Store) Option {
	return func(o *loggerOptions) { o.store = store }
}

// WithConsoleWriters overrides the per-level console channels.
func WithConsoleWriters(writers ConsoleWriters) Option {
	return func(o *loggerOptions) { o.consoleWriters = writers }
}

// WithFallbackWriter overrides where internal sink failures are
// reported. Defaults to stderr.
func WithFallbackWriter(w io.Writer) Option {
	return func(o *loggerOptions) { o.fallback = w }
}

// WithUploaderOptions forwards options to the remote uploader.
func WithUploaderOptions(opts ...UploaderOption) Option {
	return func(o *loggerOptions) { o.uploaderOptions = append(o.uploaderOptions, opts...) }
}

// New constructs the root logger over a shared configuration cell.
// Exactly one Logger (plus its WithContext derivations) should exist
// per process; pass it to the components that log rather than relying
// on package-level state.
func New(cell *config.Cell, opts ...Option) *Logger {
	options := loggerOptions{fallback: os.Stderr}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := cell.Snapshot()
	return &Logger{
		cell:      cell,
		context:   cfg.AppName,
		formatter: newFormatter(),
		console:   NewConsoleSink(cell, options.consoleWriters),
		store:     NewDurableStore(cell, options.store, options.fallback),
		remote:    NewRemoteUploader(cell, options.fallback, options.uploaderOptions...),
		worker:    newWorker(options.queueSize, options.fallback),
	}
}

// WithContext returns a logger bound to the given context label. The
// derived logger shares the configuration cell and all sinks, so later
// Configure calls on either logger affect both.
func (l *Logger) WithContext(label string) *Logger {
	derived := *l
	derived.context = label
	return &derived
}

// Context returns the label entries from this logger carry.
func (l *Logger) Context() string { return l.context }

// Configure shallow-merges the overrides into the shared
// configuration, visible immediately to every derived logger.
func (l *Logger) Configure(o config.Overrides) {
	l.cell.Update(o)
}

func (l *Logger) Debug(message string, data ...any) { l.log(LevelDebug, message, l.context, data) }

func (l *Logger) Info(message string, data ...any) { l.log(LevelInfo, message, l.context, data) }

func (l *Logger) Warn(message string, data ...any) { l.log(LevelWarn, message, l.context, data) }

func (l *Logger) Error(message string, data ...any) { l.log(LevelError, message, l.context, data) }

// LogError records err at error severity with its type, message, and
// stack wrapped into the data payload. When no context label is given
// the entry's context defaults to the error's message.
func (l *Logger) LogError(err error, contextLabel ...string) {
	if err == nil {
		return
	}
	label := err.Error()
	if len(contextLabel) > 0 && contextLabel[0] != "" {
		label = contextLabel[0]
	}
	payload := map[string]any{
		"name":    fmt.Sprintf("%T", err),
		"message": err.Error(),
		"stack":   string(debug.Stack()),
	}
	l.log(LevelError, err.Error(), label, []any{payload})
}

// StoredLogs returns the durable history, oldest first. Failures yield
// an empty sequence.
func (l *Logger) StoredLogs(ctx context.Context) []Entry {
	return l.store.Entries(ctx)
}

// ClearStoredLogs removes the durable history.
func (l *Logger) ClearStoredLogs(ctx context.Context) error {
	return l.store.Clear(ctx)
}

// ExportLogs renders the durable history as newline-joined lines.
func (l *Logger) ExportLogs(ctx context.Context) string {
	return l.store.Export(ctx)
}

// Flush forces a remote delivery attempt for whatever is pending.
func (l *Logger) Flush() {
	l.remote.Flush()
}

// Close drains the background worker and attempts a final remote
// flush. The logger must not be used after Close.
func (l *Logger) Close() error {
	l.worker.close()
	l.remote.Flush()
	return nil
}

func (l *Logger) log(level Level, message, contextLabel string, data []any) {
	cfg := l.cell.Snapshot()
	if !ShouldEmit(level, LevelOrDefault(cfg.MinLevel, LevelInfo)) {
		return
	}

	var payload any
	hasData := len(data) > 0
	if hasData {
		payload = data[0]
	}
	entry := l.formatter.format(cfg, level, message, contextLabel, payload, hasData)

	l.console.Emit(entry)
	l.worker.submit(func() { l.store.Append(context.Background(), entry) })
	l.worker.submit(func() { l.remote.Enqueue(entry) })
}
