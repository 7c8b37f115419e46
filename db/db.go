// ABOUTME: Durable local key-value storage for workbench state
// ABOUTME: Opens BadgerDB at the XDG data path and exposes the single state slot
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dgraph-io/badger/v3"
)

// DefaultPath is the BadgerDB directory used when no override is given.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "lens", "state.db")
}

// KV wraps a BadgerDB instance as the workbench's durable slot.
type KV struct {
	db *badger.DB
}

// Open opens (creating if needed) the key-value store at path.
func Open(path string) (*KV, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(path).
		WithLogger(nil) // Badger's own logging is noise here

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &KV{db: bdb}, nil
}

// Get reads a value. A key that has never been written returns (nil, nil);
// callers treat that as an empty slot, not an error.
func (kv *KV) Get(key string) ([]byte, error) {
	var result []byte
	err := kv.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Set writes a value.
func (kv *KV) Set(key string, value []byte) error {
	return kv.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Delete removes a key. Deleting an absent key is not an error.
func (kv *KV) Delete(key string) error {
	return kv.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close releases the underlying database.
func (kv *KV) Close() error {
	return kv.db.Close()
}
