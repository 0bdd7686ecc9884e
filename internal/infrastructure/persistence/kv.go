package persistence

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence contract of the core: a key-value store
// holding whole serialized records. Writes replace the entire value;
// there are no partial updates.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
