// Package kv implements the durable key-value store backing sessions,
// credentials and saved items. It is the client's analog of browser
// localStorage: stable string keys, opaque serialized values, single-key
// atomic overwrites.
package kv

import "context"

// Repository is a durable string-keyed byte store.
//
// Get returns (nil, nil) for a missing key so callers can treat absence as
// empty state without error handling.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
