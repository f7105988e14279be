package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"logship/internal/config"
	"logship/internal/kv"
)

// StorageKey is the fixed key holding the serialized entry sequence.
const StorageKey = "logship.entries"

// DurableStore maintains the bounded, order-preserving local history
// of entries. The stored value is one JSON array under a single key;
// eviction always drops the oldest entries first. Read and parse
// failures are swallowed: the store reports them on the fallback
// writer and behaves as if empty.
//
// Append performs a read-modify-write over the shared persisted value.
// The logger serializes all appends through its background worker, so
// within one process appends are linearized; concurrent writers from
// other processes can still lose an update.
type DurableStore struct {
	cell     *config.Cell
	store    kv.Store
	fallback io.Writer
}

// NewDurableStore builds a durable store over the shared configuration
// and KV collaborator.
func NewDurableStore(cell *config.Cell, store kv.Store, fallback io.Writer) *DurableStore {
	return &DurableStore{cell: cell, store: store, fallback: fallback}
}

// Append persists entry at the end of the stored sequence, evicting
// from the front when the configured capacity is exceeded. A disabled
// store is a no-op. Failures never propagate.
func (s *DurableStore) Append(ctx context.Context, entry Entry) {
	cfg := s.cell.Snapshot()
	if !cfg.Storage.Enabled || s.store == nil {
		return
	}

	entries := s.read(ctx)
	entries = append(entries, entry)
	if max := cfg.Storage.MaxStoredLogs; len(entries) > max {
		entries = entries[len(entries)-max:]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		s.report("serialize stored logs", err)
		return
	}
	if err := s.store.Set(ctx, StorageKey, string(raw)); err != nil {
		s.report("write stored logs", err)
	}
}

// Entries returns the stored sequence, oldest first. Any read or parse
// failure yields an empty sequence.
func (s *DurableStore) Entries(ctx context.Context) []Entry {
	if s.store == nil {
		return nil
	}
	return s.read(ctx)
}

// Clear removes all stored entries.
func (s *DurableStore) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear stored logs: %w", err)
	}
	return nil
}

// Export renders the stored sequence as newline-joined human-readable
// lines, oldest first.
func (s *DurableStore) Export(ctx context.Context) string {
	entries := s.Entries(ctx)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, exportLine(entry))
	}
	return strings.Join(lines, "\n")
}

func exportLine(entry Entry) string {
	var line strings.Builder
	line.WriteString(entry.Timestamp.Format(timestampLayout))
	line.WriteString(" [")
	line.WriteString(entry.Level.Label())
	line.WriteString("] [")
	line.WriteString(entry.Context)
	line.WriteString("] ")
	line.WriteString(entry.Message)
	if entry.Data != nil {
		line.WriteByte(' ')
		line.WriteString(formatData(entry.Data))
	}
	return line.String()
}

func (s *DurableStore) read(ctx context.Context) []Entry {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.report("read stored logs", err)
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.report("decode stored logs", err)
		return nil
	}
	return entries
}

func (s *DurableStore) report(op string, err error) {
	if s.fallback == nil {
		return
	}
	fmt.Fprintf(s.fallback, "logship: %s: %v\n", op, err)
}
