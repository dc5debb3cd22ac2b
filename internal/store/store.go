package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("key not found")
	ErrPersistence = errors.New("persistence failure")
)

// Store is a durable string-keyed key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value string) error
}
