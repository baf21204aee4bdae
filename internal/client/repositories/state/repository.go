// Package state implements the durable key→value storage the session
// mirrors itself into. Values are strings; an empty result from Get means
// the key is absent.
package state

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all the given keys, atomically where the backing
	// store supports it.
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
