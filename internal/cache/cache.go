// Package cache is the keyed query cache that sits in front of the
// repositories. Entries expire after a TTL and are dropped explicitly by key
// prefix after writes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

// Store is the backing storage for cached query results
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Invalidate removes key and every key built from it by Key
	Invalidate(ctx context.Context, key string) error
}

// Key prefixes for cached queries
const (
	ReadingsPrefix = "bloodSugarReadings"
	MedicinePrefix = "medicineLogs"
	DoctorsPrefix  = "doctors"
)

const separator = ":"

// Key joins a prefix and its parts with ':'
func Key(prefix string, parts ...any) string {
	key := prefix
	for _, p := range parts {
		key += fmt.Sprintf("%s%v", separator, p)
	}
	return key
}

// QueryCache de-duplicates concurrent loads of the same key. Every
// invalidation bumps a generation so that loads already in flight neither
// write back nor get joined by later callers.
type QueryCache struct {
	store Store
	group singleflight.Group
	gen   atomic.Uint64
}

// New creates a query cache over store
func New(store Store) *QueryCache {
	return &QueryCache{store: store}
}

// Invalidate drops key and every entry nested under it
func (c *QueryCache) Invalidate(ctx context.Context, key string) error {
	c.gen.Add(1)
	if err := c.store.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", key, err)
	}
	return nil
}

// Fetch returns the cached value for key, or runs load once for all
// concurrent callers and caches its result for ttl. A non-positive ttl
// disables caching but still shares in-flight loads. A cache read or write
// failure is logged and the loaded value is still returned.
//
// The shared load is detached from the caller's cancellation; a caller
// whose ctx ends stops waiting without failing the others.
func Fetch[T any](ctx context.Context, c *QueryCache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T
	cacheable := ttl > 0

	gen := c.gen.Load()
	if cacheable {
		if v, ok := lookup[T](ctx, c.store, key); ok {
			return v, nil
		}
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if !cacheable {
			return v, nil
		}
		if c.gen.Load() != gen {
			logger.Debug("Skipping write-back of invalidated load", "key", key)
			return v, nil
		}
		raw, err := json.Marshal(v)
		if err != nil {
			logger.Warn("Cache encode failed", "key", key, "error", err)
			return v, nil
		}
		if err := c.store.Set(loadCtx, key, raw, ttl); err != nil {
			logger.Warn("Cache write failed", "key", key, "error", err)
		} else if c.gen.Load() != gen {
			// invalidated between the check and the write
			if err := c.store.Invalidate(loadCtx, key); err != nil {
				logger.Warn("Cache rollback failed", "key", key, "error", err)
			}
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			logger.Debug("Shared in-flight load", "key", key)
		}
		return res.Val.(T), nil
	}
}

func lookup[T any](ctx context.Context, store Store, key string) (T, bool) {
	var v T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("Cache read failed", "key", key, "error", err)
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Dropping undecodable cache entry", "key", key)
		var zero T
		return zero, false
	}
	return v, true
}
