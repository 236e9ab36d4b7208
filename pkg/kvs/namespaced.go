package kvs

import (
	"context"
	"strings"
	"time"
)

// Namespaced wraps a Store and prepends a prefix to every key, so
// independent concerns (the session record, one cache per user) can
// share a single physical backend without stepping on each other.
type Namespaced struct {
	store  Store
	prefix string
}

// NewNamespaced creates a namespaced view of store. An empty prefix
// returns the store unchanged.
func NewNamespaced(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &Namespaced{store: store, prefix: prefix}
}

// Get retrieves a value by key.
func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.store.Get(ctx, n.prefix+key)
}

// Set stores a value with optional TTL.
func (n *Namespaced) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return n.store.Set(ctx, n.prefix+key, value, ttl)
}

// Delete removes a key.
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.prefix+key)
}

// Exists reports whether a key exists.
func (n *Namespaced) Exists(ctx context.Context, key string) (bool, error) {
	return n.store.Exists(ctx, n.prefix+key)
}

// List returns keys under the namespace with the prefix stripped.
func (n *Namespaced) List(ctx context.Context, prefix string) ([]string, error) {
	keys, err := n.store.List(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = strings.TrimPrefix(key, n.prefix)
	}
	return out, nil
}

// Close closes the underlying store. Namespaced views share it, so
// close only once, at the owner.
func (n *Namespaced) Close() error {
	return n.store.Close()
}
