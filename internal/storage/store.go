// Package storage wraps an embedded Pebble database as a small durable
// key-value store with JSON record encoding. Each manager owns a distinct
// top-level key and reads/writes its entire entry in one round trip.
package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// Store is a synchronous durable key-value store.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the store under dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the raw value for key. The second return is false when the
// key is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	v, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	defer closer.Close()
	out := append([]byte(nil), v...)
	return out, true, nil
}

// Set writes value under key with a synced WAL commit, so a returned nil
// means the entry is durable.
func (s *Store) Set(key string, value []byte) error {
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// ReadJSON decodes the entry at key into out. A missing or malformed entry
// leaves out at its zero value and returns nil: corrupt durable state is
// treated as empty state, never as a fatal error.
func ReadJSON(s *Store, key string, out interface{}) error {
	raw, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}

// WriteJSON encodes v and stores it under key.
func WriteJSON(s *Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Set(key, raw)
}
