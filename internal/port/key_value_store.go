package port

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the local text-blob store the inventory is persisted in.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error
}
