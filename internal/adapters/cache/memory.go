// Package cache provides in-process cache providers for parsed content.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-notes/pkg/interfaces"
)

const (
	defaultTTL             = 10 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// Config controls the go-cache backed provider.
type Config struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

// Memory is an interfaces.CacheProvider backed by patrickmn/go-cache.
type Memory struct {
	store *gocache.Cache
}

var _ interfaces.CacheProvider = (*Memory)(nil)

// NewMemory builds a provider. Zero durations select the package defaults.
func NewMemory(cfg Config) *Memory {
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = defaultCleanupInterval
	}
	return &Memory{store: gocache.New(ttl, cleanup)}
}

// Get returns (nil, nil) on a miss.
func (m *Memory) Get(ctx context.Context, key string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, found := m.store.Get(key)
	if !found {
		return nil, nil
	}
	return value, nil
}

// Set stores value for ttl; zero uses the provider default.
func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.store.Delete(key)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.store.Flush()
	return nil
}

// Len reports the number of unexpired entries.
func (m *Memory) Len() int {
	return m.store.ItemCount()
}
