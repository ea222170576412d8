package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"kharj/internal/kv"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "kharj.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.Get(ctx, "categories"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "categories", `[{"label":"غذا","value":"food"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "categories")
	if err != nil || got != `[{"label":"غذا","value":"food"}]` {
		t.Fatalf("get: %q, %v", got, err)
	}

	if err := s.Set(ctx, "categories", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _ = s.Get(ctx, "categories"); got != `[]` {
		t.Fatalf("overwrite not applied: %q", got)
	}
}

func TestSQLiteStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kharj.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Set(context.Background(), "expenses", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()
	got, err := s.Get(context.Background(), "expenses")
	if err != nil || got != `[]` {
		t.Fatalf("data lost across reopen: %q, %v", got, err)
	}
}
