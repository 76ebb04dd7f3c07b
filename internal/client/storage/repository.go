// Package storage is the durable client-side key/value storage.
//
// Repository is implemented by SQLite (the default, schema managed by
// embedded goose migrations), Redis and an in-memory map. Get returns
// (nil, nil) for a missing key.
//
// Local wraps a Repository with the best-effort JSON helpers the state
// container persists through: failures are logged and never returned.
package storage

import (
	"context"
	"errors"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
