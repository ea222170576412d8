// Package redis implements kv.Store on a redis server, for setups where the
// ledger data should outlive the local filesystem.
package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"

	"kharj/internal/kv"
)

type Store struct {
	client *redis.Client
}

func New(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	value, err := s.client.Get(key).Result()
	if err == redis.Nil {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	if err := s.client.Set(key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
