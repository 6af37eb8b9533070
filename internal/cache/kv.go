// Package cache provides a small byte-value cache used to memoize
// published content queries. Draft content is never cached.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// KV is a get/set cache with per-entry TTL.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Nop is a KV that stores nothing. Used when caching is disabled.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
