// Package bolt implements kv.Store on a bbolt file: a single bucket of
// string keys, the closest on-disk analog of the storage the ledger's data
// originally lived in.
package bolt

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"kharj/internal/kv"
)

const bucketName = "ledger"

type Store struct {
	db *bolt.DB
}

func New(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if data == nil {
			return kv.ErrNotFound
		}
		value = append(value, data...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
