package memory

import (
	"context"
	"errors"
	"testing"

	"kharj/internal/kv"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "expenses"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := s.Set(ctx, "expenses", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "expenses")
	if err != nil || got != `[]` {
		t.Fatalf("get after set: %q, %v", got, err)
	}

	// Overwrite replaces the previous value.
	if err := s.Set(ctx, "expenses", `[{"id":"1"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "expenses")
	if got != `[{"id":"1"}]` {
		t.Fatalf("overwrite not applied: %q", got)
	}
}
