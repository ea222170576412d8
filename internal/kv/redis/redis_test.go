package redis

import (
	"context"
	"os"
	"testing"
)

// Integration test; needs a running redis. Set KHARJ_TEST_REDIS_ADDR to run.
func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("KHARJ_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("KHARJ_TEST_REDIS_ADDR not set")
	}

	s, err := New(addr)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "kharj:test:key", "value"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "kharj:test:key")
	if err != nil || got != "value" {
		t.Fatalf("get: %q, %v", got, err)
	}
}
