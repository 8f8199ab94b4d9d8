// Package metadata is a small key/value store backed by the metadata table.
// It is the durable storage substrate of the client session.
package metadata

import (
	"context"
)

// Repository reads and writes raw values by key. Get returns (nil, nil) for
// an absent key; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
