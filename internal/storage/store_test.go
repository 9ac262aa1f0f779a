package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotStore(db)
}

func TestLoadBeforeFirstSave(t *testing.T) {
	store := newTestStore(t)
	blob, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if blob != nil {
		t.Fatalf("expected nil blob on first run, got %q", blob)
	}
}

func TestSaveLoadOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []byte(`{"totalXP":50}`)
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Fatalf("load=%q, want %q", got, first)
	}

	second := []byte(`{"totalXP":75}`)
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Fatalf("overwrite failed: load=%q", got)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	blob, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if blob != nil {
		t.Fatalf("snapshot survived delete: %q", blob)
	}

	// Deleting again is harmless.
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
