// Package kv defines the persistent key-value store port the ledger writes
// through. Values are opaque string blobs; the ledger stores JSON arrays
// under the "expenses" and "categories" keys.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is the outbound port for durable storage.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Closer is implemented by stores holding external resources.
type Closer interface {
	Close() error
}
