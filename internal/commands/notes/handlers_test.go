package notescmd_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-notes/internal/adapters/cache"
	notescmd "github.com/goliatone/go-notes/internal/commands/notes"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/notes"
)

var nodeID = uuid.MustParse("00000000-0000-0000-0000-00000000e001")

func newService(store *cache.Memory) *notes.Service {
	lookup := nodes.NewMemoryLookup(nodes.Node{
		ID:      nodeID,
		Kind:    nodes.KindLeaf,
		Title:   "Ethics",
		Path:    "/ethics",
		Content: `\heading{Virtue}\cite{aristotle}`,
	})
	return notes.NewService(notes.WithCache(store, 0), notes.WithNodeLookup(lookup))
}

func TestWarmAndInvalidateHandlers(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory(cache.Config{})
	service := newService(store)

	warm := notescmd.NewWarmNodeCacheHandler(service, logging.NoOp(), notescmd.FeatureGates{})
	if err := warm.Execute(ctx, notescmd.WarmNodeCacheCommand{NodeID: nodeID}); err != nil {
		t.Fatalf("warm returned error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected cache warmed, got %d entries", store.Len())
	}

	invalidate := notescmd.NewInvalidateNodeCacheHandler(service, nil, notescmd.FeatureGates{})
	if err := invalidate.Execute(ctx, notescmd.InvalidateNodeCacheCommand{NodeID: nodeID}); err != nil {
		t.Fatalf("invalidate returned error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected cache emptied, got %d entries", store.Len())
	}
}

func TestHandlersValidateNodeID(t *testing.T) {
	service := newService(cache.NewMemory(cache.Config{}))

	warm := notescmd.NewWarmNodeCacheHandler(service, nil, notescmd.FeatureGates{})
	err := warm.Execute(context.Background(), notescmd.WarmNodeCacheCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	invalidate := notescmd.NewInvalidateNodeCacheHandler(service, nil, notescmd.FeatureGates{})
	err = invalidate.Execute(context.Background(), notescmd.InvalidateNodeCacheCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlersRespectFeatureGate(t *testing.T) {
	service := newService(cache.NewMemory(cache.Config{}))
	gates := notescmd.FeatureGates{CacheEnabled: func() bool { return false }}

	warm := notescmd.NewWarmNodeCacheHandler(service, nil, gates)
	err := warm.Execute(context.Background(), notescmd.WarmNodeCacheCommand{NodeID: nodeID})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlersReportMissingNodes(t *testing.T) {
	service := newService(cache.NewMemory(cache.Config{}))

	warm := notescmd.NewWarmNodeCacheHandler(service, nil, notescmd.FeatureGates{})
	err := warm.Execute(context.Background(), notescmd.WarmNodeCacheCommand{NodeID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for unknown node")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if (notescmd.WarmNodeCacheCommand{}).Type() == (notescmd.InvalidateNodeCacheCommand{}).Type() {
		t.Fatal("expected distinct message types")
	}
	if err := (notescmd.WarmNodeCacheCommand{NodeID: nodeID}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if !errors.Is(notescmd.ErrCacheDisabled, notescmd.ErrCacheDisabled) {
		t.Fatal("sentinel mismatch")
	}
}
