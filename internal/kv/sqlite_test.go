package kv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v1" {
		t.Fatalf("get after set = (%q, %v, %v)", value, ok, err)
	}

	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = store.Get(ctx, "k")
	if value != "v2" {
		t.Fatalf("expected overwrite, got %q", value)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("expected key removed")
	}
	// Deleting a missing key is fine.
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Set(ctx, "k", "survives"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get(ctx, "k")
	if err != nil || !ok || value != "survives" {
		t.Fatalf("get after reopen = (%q, %v, %v)", value, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, _ := store.Get(ctx, "a")
	if !ok || value != "1" {
		t.Fatalf("get = (%q, %v)", value, ok)
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Fatal("expected key removed")
	}
}
