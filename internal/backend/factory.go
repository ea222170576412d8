package backend

import (
	"fmt"
	"log/slog"

	"kharj/internal/events"
	"kharj/internal/kv"
	"kharj/internal/kv/bolt"
	"kharj/internal/kv/memory"
	"kharj/internal/kv/redis"
	"kharj/internal/kv/sqlite"
)

// Factory creates backends based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the store named by config.Type plus the optional AMQP
// publisher. A failed AMQP connection is logged and skipped, not fatal; a
// failed store is fatal.
func (f *Factory) Create(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	store, cleanup, err := f.createStore(config)
	if err != nil {
		return nil, err
	}

	var publisher *events.Publisher
	if config.AMQPURL != "" {
		publisher, err = events.NewPublisher(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP publisher, continuing without events", "error", err)
			publisher = nil
		} else {
			f.logger.Info("Initialized AMQP publisher",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	result := &Result{
		Store:  store,
		Events: publisher,
		Cleanup: func() error {
			if publisher != nil {
				if err := publisher.Close(); err != nil {
					f.logger.Warn("Failed to close AMQP publisher", "error", err)
				}
			}
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	f.logger.Info("Initialized storage backend",
		"backend", config.Type.String(),
		"amqp_enabled", publisher != nil)

	return result, nil
}

func (f *Factory) createStore(config Config) (kv.Store, CleanupFunc, error) {
	switch config.Type {
	case Memory:
		return memory.New(), nil, nil
	case SQLite:
		s, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		return s, s.Close, nil
	case Bolt:
		s, err := bolt.New(config.BoltDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize bolt store: %w", err)
		}
		return s, s.Close, nil
	case Redis:
		s, err := redis.New(config.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize redis store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
