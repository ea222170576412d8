// Package backend constructs the kv store (and optional event publisher) the
// ledger runs on, based on configuration.
package backend

import (
	"kharj/internal/events"
	"kharj/internal/kv"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result bundles everything a process needs to run a ledger.
type Result struct {
	Store   kv.Store
	Events  *events.Publisher
	Cleanup CleanupFunc
}

// Type identifies a storage backend.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
	Bolt   Type = "bolt"
	Redis  Type = "redis"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite, Bolt, Redis:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Bolt specific
	BoltDBPath string

	// Redis specific
	RedisAddr string

	// AMQP events (optional, any backend)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}
