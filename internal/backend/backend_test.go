package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	for _, bt := range []Type{Memory, SQLite, Bolt, Redis} {
		if !bt.IsValid() {
			t.Fatalf("%s should be valid", bt)
		}
	}
	if Type("sheets").IsValid() {
		t.Fatalf("unknown type should be invalid")
	}
}

func TestFactoryCreateMemory(t *testing.T) {
	f := NewFactory(nil)
	result, err := f.Create(Config{Type: Memory})
	if err != nil {
		t.Fatalf("create memory backend: %v", err)
	}
	defer result.Cleanup()

	if err := result.Store.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("store should be usable: %v", err)
	}
	if result.Events != nil {
		t.Fatalf("events should be nil without AMQP_URL")
	}
}

func TestFactoryCreateBolt(t *testing.T) {
	f := NewFactory(nil)
	result, err := f.Create(Config{
		Type:       Bolt,
		BoltDBPath: filepath.Join(t.TempDir(), "kharj.bolt"),
	})
	if err != nil {
		t.Fatalf("create bolt backend: %v", err)
	}
	defer result.Cleanup()

	if err := result.Store.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("store should be usable: %v", err)
	}
}

func TestFactoryCreateInvalidType(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.Create(Config{Type: "sheets"}); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}
