// Package cache provides a best-effort per-user snapshot cache on top
// of the durable key-value store. Pages render cached data immediately
// and refresh it from the backend in the background; a cache failure
// is never an error, only a miss.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/edu2job/edu2job/pkg/kvs"
	"github.com/edu2job/edu2job/pkg/logging"
)

// Feature names for cached snapshots. Keys are scoped per feature and
// per user so a different login never sees another user's data.
const (
	FeatureDashboard   = "dashboard"
	FeatureProfile     = "profile"
	FeaturePredictions = "predictions"
)

const keyPrefix = "cache:"

// Cache stores JSON snapshots keyed by feature and user email.
type Cache struct {
	store  kvs.Store
	ttl    time.Duration
	logger logging.Logger
}

// New creates a Cache over the given store. Entries expire after ttl.
func New(store kvs.Store, ttl time.Duration, logger logging.Logger) *Cache {
	return &Cache{
		store:  kvs.NewNamespaced(store, keyPrefix),
		ttl:    ttl,
		logger: logger.WithModule("cache"),
	}
}

func cacheKey(feature, email string) string {
	return feature + ":" + strings.ToLower(email)
}

// Get loads the cached snapshot for a feature and user into out.
// Returns false on a miss, an expired entry, or a corrupt entry.
// Corrupt entries are dropped so the next write starts clean.
func (c *Cache) Get(ctx context.Context, feature, email string, out interface{}) bool {
	if email == "" {
		return false
	}

	key := cacheKey(feature, email)
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if err != kvs.ErrNotFound {
			c.logger.Debug("Cache read failed", "feature", feature, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Debug("Dropping corrupt cache entry", "feature", feature, "error", err)
		if derr := c.store.Delete(ctx, key); derr != nil {
			c.logger.Debug("Failed to drop cache entry", "feature", feature, "error", derr)
		}
		return false
	}

	return true
}

// Put stores a snapshot for a feature and user. Failures are logged
// and otherwise ignored.
func (c *Cache) Put(ctx context.Context, feature, email string, v interface{}) {
	if email == "" {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Debug("Cache encode failed", "feature", feature, "error", err)
		return
	}

	if err := c.store.Set(ctx, cacheKey(feature, email), data, c.ttl); err != nil {
		c.logger.Debug("Cache write failed", "feature", feature, "error", err)
	}
}

// Invalidate removes one feature snapshot for a user.
func (c *Cache) Invalidate(ctx context.Context, feature, email string) {
	if email == "" {
		return
	}
	if err := c.store.Delete(ctx, cacheKey(feature, email)); err != nil && err != kvs.ErrNotFound {
		c.logger.Debug("Cache invalidate failed", "feature", feature, "error", err)
	}
}

// InvalidateUser removes every cached snapshot belonging to a user.
// Called on logout so a later login on the same machine starts fresh.
func (c *Cache) InvalidateUser(ctx context.Context, email string) {
	if email == "" {
		return
	}

	suffix := ":" + strings.ToLower(email)
	keys, err := c.store.List(ctx, "")
	if err != nil {
		c.logger.Debug("Cache scan failed", "error", err)
		return
	}

	for _, key := range keys {
		if !strings.HasSuffix(key, suffix) {
			continue
		}
		if err := c.store.Delete(ctx, key); err != nil && err != kvs.ErrNotFound {
			c.logger.Debug("Cache invalidate failed", "key", key, "error", err)
		}
	}
}
