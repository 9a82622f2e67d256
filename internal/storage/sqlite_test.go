package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	_, found, err := store.Get(ctx, "missing")
	if err != nil || found {
		t.Fatalf("expected missing key: found=%v err=%v", found, err)
	}

	if err := store.Put(ctx, "k", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, found, err := store.Get(ctx, "k")
	if err != nil || !found || string(v) != `[1,2,3]` {
		t.Fatalf("get after put: %q found=%v err=%v", v, found, err)
	}

	// Overwrite is last-write-wins.
	if err := store.Put(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = store.Get(ctx, "k")
	if string(v) != `[]` {
		t.Fatalf("expected overwrite, got %q", v)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, found, _ = store.Get(ctx, "k")
	if found {
		t.Fatalf("expected key deleted")
	}
}
