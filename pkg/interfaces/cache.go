package interfaces

import (
	"context"
	"time"
)

// CacheProvider stores parsed content between requests. Get returns
// (nil, nil) on a miss; a zero ttl selects the provider default.
type CacheProvider interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
