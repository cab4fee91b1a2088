package noop

import (
	"context"
	"testing"
)

func TestCacheNeverStores(t *testing.T) {
	ctx := context.Background()
	cache := Cache()

	if err := cache.Set(ctx, "key", "value", 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, err := cache.Get(ctx, "key")
	if err != nil || value != nil {
		t.Fatalf("expected miss, got %v, %v", value, err)
	}
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
}
