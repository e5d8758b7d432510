// Package kv provides the durable key-value document store backing all
// persisted state. Every document is an independently keyed JSON blob.
package kv

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is a small durable key-value store for JSON documents.
type Store interface {
	// Get returns the raw value for the key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for the key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
