package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory(Config{})

	value, err := cache.Get(ctx, "missing")
	if err != nil || value != nil {
		t.Fatalf("expected miss, got %v, %v", value, err)
	}

	if err := cache.Set(ctx, "k", 42, 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, err = cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected 42, got %v", value)
	}

	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if value, _ := cache.Get(ctx, "k"); value != nil {
		t.Fatalf("expected entry removed, got %v", value)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory(Config{DefaultTTL: time.Hour})

	if err := cache.Set(ctx, "short", "v", time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if value, _ := cache.Get(ctx, "short"); value != nil {
		t.Fatalf("expected expired entry, got %v", value)
	}
}

func TestMemoryClear(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory(Config{})
	_ = cache.Set(ctx, "a", 1, 0)
	_ = cache.Set(ctx, "b", 2, 0)

	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cache.Len())
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", cache.Len())
	}
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cache := NewMemory(Config{})
	if err := cache.Set(ctx, "a", 1, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := cache.Get(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
