package config

import "sync"

// Cell is the single shared configuration holder. A root logger and
// every logger derived from it reference the same Cell, so an Update
// through any holder is visible to all of them on their next Snapshot.
// Sharing is explicit in constructor signatures rather than ambient
// package state.
type Cell struct {
	mu  sync.RWMutex
	cfg Config
}

// NewCell wraps an initial configuration value.
func NewCell(cfg Config) *Cell {
	return &Cell{cfg: cfg}
}

// Snapshot returns a copy of the current configuration.
func (c *Cell) Snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Update shallow-merges the overrides into the shared configuration.
func (c *Cell) Update(o Overrides) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.apply(o)
}
