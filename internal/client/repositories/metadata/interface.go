// Package metadata is a small key-value store over the client's local SQLite
// database. The session layer keeps the persisted credential here.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
