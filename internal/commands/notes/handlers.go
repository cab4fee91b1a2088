package notescmd

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/goliatone/go-notes/internal/commands"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

// ErrCacheDisabled is returned when the parse cache feature is off.
var ErrCacheDisabled = errors.New("notes command: parse cache disabled")

// NodeCache is the part of the notes service the cache commands drive.
type NodeCache interface {
	WarmNode(ctx context.Context, id uuid.UUID) error
	InvalidateNode(ctx context.Context, id uuid.UUID) error
}

// FeatureGates exposes the runtime toggles the handlers check.
type FeatureGates struct {
	CacheEnabled func() bool
}

func (g FeatureGates) cacheEnabled() bool {
	if g.CacheEnabled == nil {
		return true
	}
	return g.CacheEnabled()
}

// WarmNodeCacheHandler executes WarmNodeCacheCommand.
type WarmNodeCacheHandler struct {
	inner *commands.Handler[WarmNodeCacheCommand]
}

// NewWarmNodeCacheHandler wires the handler to service.
func NewWarmNodeCacheHandler(service NodeCache, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[WarmNodeCacheCommand]) *WarmNodeCacheHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg WarmNodeCacheCommand) error {
		if !gates.cacheEnabled() {
			return ErrCacheDisabled
		}
		if err := service.WarmNode(ctx, msg.NodeID); err != nil {
			return err
		}
		logging.WithNodeContext(logger, msg.NodeID.String(), "").Info("notes.command.cache.warmed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[WarmNodeCacheCommand]{
		commands.WithLogger[WarmNodeCacheCommand](logger),
		commands.WithOperation[WarmNodeCacheCommand]("notes.cache.warm"),
		commands.WithMessageFields(func(msg WarmNodeCacheCommand) map[string]any {
			return map[string]any{"node_id": msg.NodeID.String()}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WarmNodeCacheHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[WarmNodeCacheCommand].
func (h *WarmNodeCacheHandler) Execute(ctx context.Context, msg WarmNodeCacheCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InvalidateNodeCacheHandler executes InvalidateNodeCacheCommand.
type InvalidateNodeCacheHandler struct {
	inner *commands.Handler[InvalidateNodeCacheCommand]
}

// NewInvalidateNodeCacheHandler wires the handler to service.
func NewInvalidateNodeCacheHandler(service NodeCache, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[InvalidateNodeCacheCommand]) *InvalidateNodeCacheHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg InvalidateNodeCacheCommand) error {
		if !gates.cacheEnabled() {
			return ErrCacheDisabled
		}
		if err := service.InvalidateNode(ctx, msg.NodeID); err != nil {
			return err
		}
		logging.WithNodeContext(logger, msg.NodeID.String(), "").Info("notes.command.cache.invalidated")
		return nil
	}

	handlerOpts := []commands.HandlerOption[InvalidateNodeCacheCommand]{
		commands.WithLogger[InvalidateNodeCacheCommand](logger),
		commands.WithOperation[InvalidateNodeCacheCommand]("notes.cache.invalidate"),
		commands.WithMessageFields(func(msg InvalidateNodeCacheCommand) map[string]any {
			return map[string]any{"node_id": msg.NodeID.String()}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InvalidateNodeCacheHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[InvalidateNodeCacheCommand].
func (h *InvalidateNodeCacheHandler) Execute(ctx context.Context, msg InvalidateNodeCacheCommand) error {
	return h.inner.Execute(ctx, msg)
}
