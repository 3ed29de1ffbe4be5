// Package sqlite implements the repository ports over a single-file SQLite
// database. Each collection is stored as one JSON document in a kv_store
// table, keyed the same way the original dashboard keyed browser local
// storage entries.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KVStore is a generic key-value layer over the kv_store table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a KVStore over an open database handle.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Load returns the value stored under key. If no prior value exists, the
// default is persisted under the key and returned.
func (s *KVStore) Load(ctx context.Context, key string, def []byte) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		if err := s.Save(ctx, key, def); err != nil {
			return nil, fmt.Errorf("persist default for key %s: %w", key, err)
		}
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load key %s: %w", key, err)
	}
	return value, nil
}

// Save serializes value under key, overwriting any prior value.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save key %s: %w", key, err)
	}
	return nil
}
