// Package kv is the storage seam behind token social links and the
// profile directory. Callers only see Get and Set, so the in-memory
// placeholder can be swapped for a durable backend without touching them.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a key that was never written.
var ErrNotFound = errors.New("kv: not found")

type Store interface {
	// Get returns the value stored at key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored at key. Last write wins.
	Set(ctx context.Context, key string, value []byte) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// Namespaced prefixes every key so several domains can share a backend.
type Namespaced struct {
	Store  Store
	Prefix string
}

func (n Namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.Store.Get(ctx, n.Prefix+key)
}

func (n Namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.Store.Set(ctx, n.Prefix+key, value)
}

func (n Namespaced) Ping(ctx context.Context) error {
	return n.Store.Ping(ctx)
}
