// Package notes ties parsing, caching and document assembly together for
// raw text and for stored leaf nodes.
package notes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-notes/internal/adapters/noop"
	"github.com/goliatone/go-notes/internal/document"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

const cacheKeyPrefix = "notes:parse:"

// NodeLookup loads stored content nodes.
type NodeLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (*nodes.Node, error)
	ByPath(ctx context.Context, path string) (*nodes.Node, error)
}

// Service parses and renders note content.
type Service struct {
	parser    *markup.Parser
	assembler *document.Assembler
	nodes     NodeLookup
	cache     interfaces.CacheProvider
	cacheTTL  time.Duration
	logger    interfaces.Logger
	metrics   Metrics
}

// ServiceOption customises service behaviour.
type ServiceOption func(*Service)

// WithCache stores parse results in cache for ttl. A zero ttl defers to
// the provider default.
func WithCache(cache interfaces.CacheProvider, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
			s.cacheTTL = ttl
		}
	}
}

// WithAssembler replaces the default assembler, typically to supply one
// wired with source and node lookups.
func WithAssembler(assembler *document.Assembler) ServiceOption {
	return func(s *Service) {
		if assembler != nil {
			s.assembler = assembler
		}
	}
}

// WithNodeLookup enables RenderNode and the node cache operations.
func WithNodeLookup(lookup NodeLookup) ServiceOption {
	return func(s *Service) {
		s.nodes = lookup
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics wires the metrics recorder used for telemetry.
func WithMetrics(metrics Metrics) ServiceOption {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// NewService constructs a service. Without options it parses uncached and
// renders with an assembler that has no lookups.
func NewService(opts ...ServiceOption) *Service {
	service := &Service{
		parser:    markup.NewParser(),
		assembler: document.NewAssembler(),
		cache:     noop.Cache(),
		logger:    logging.NoOp(),
		metrics:   NoOpMetrics(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(service)
		}
	}
	return service
}

// Parse returns the segmentation of text, serving repeated texts from the
// cache. Cache failures are logged and otherwise ignored.
func (s *Service) Parse(ctx context.Context, text string) (*markup.ParsedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := CacheKey(text)
	logger := logging.WithFields(s.baseLogger(ctx), map[string]any{
		"operation": "notes.parse",
		"cache_key": key,
	})

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logging.WithFields(logger, map[string]any{"error": err}).Warn("notes.service.cache_get_failed")
	}
	if parsed, ok := cached.(*markup.ParsedContent); ok && parsed != nil {
		s.metrics.IncrementCacheHit()
		logger.Debug("notes.service.parse_cached")
		return parsed, nil
	}
	s.metrics.IncrementCacheMiss()

	start := time.Now()
	parsed := s.parser.Parse(text)
	elapsed := time.Since(start)
	s.metrics.ObserveParseDuration(elapsed)

	if err := s.cache.Set(ctx, key, parsed, s.cacheTTL); err != nil {
		logging.WithFields(logger, map[string]any{"error": err}).Warn("notes.service.cache_set_failed")
	}
	logging.WithFields(logger, map[string]any{
		"segments":    len(parsed.Segments),
		"citations":   len(parsed.Citations),
		"duration_ms": elapsed.Milliseconds(),
	}).Debug("notes.service.parse_completed")
	return parsed, nil
}

// Render parses text and assembles it into a Document.
func (s *Service) Render(ctx context.Context, text string, opts document.Options) (*document.Document, error) {
	parsed, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	doc, err := s.assembler.Assemble(ctx, parsed, opts)
	if err != nil {
		logging.WithFields(s.baseLogger(ctx), map[string]any{"error": err}).Error("notes.service.render_failed")
		return nil, err
	}
	return doc, nil
}

// RenderNode loads the leaf node selected by req and renders its content.
func (s *Service) RenderNode(ctx context.Context, req RenderNodeRequest) (*document.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		node *nodes.Node
		err  error
	)
	if req.ID != "" {
		node, err = s.loadNode(ctx, uuid.MustParse(req.ID))
	} else {
		node, err = s.loadNodeByPath(ctx, req.Path)
	}
	if err != nil {
		return nil, err
	}
	return s.Render(ctx, node.Content, document.Options{Style: req.Style})
}

// Invalidate drops the cached parse of text.
func (s *Service) Invalidate(ctx context.Context, text string) error {
	return s.cache.Delete(ctx, CacheKey(text))
}

// WarmNode parses the node's current content into the cache.
func (s *Service) WarmNode(ctx context.Context, id uuid.UUID) error {
	node, err := s.loadNode(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.Parse(ctx, node.Content)
	return err
}

// InvalidateNode drops the cached parse of the node's current content.
func (s *Service) InvalidateNode(ctx context.Context, id uuid.UUID) error {
	node, err := s.loadNode(ctx, id)
	if err != nil {
		return err
	}
	return s.Invalidate(ctx, node.Content)
}

func (s *Service) loadNode(ctx context.Context, id uuid.UUID) (*nodes.Node, error) {
	if s.nodes == nil {
		return nil, ErrNodeLookupRequired
	}
	node, err := s.nodes.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.requireLeaf(ctx, node)
}

func (s *Service) loadNodeByPath(ctx context.Context, path string) (*nodes.Node, error) {
	if s.nodes == nil {
		return nil, ErrNodeLookupRequired
	}
	node, err := s.nodes.ByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.requireLeaf(ctx, node)
}

func (s *Service) requireLeaf(ctx context.Context, node *nodes.Node) (*nodes.Node, error) {
	if node == nil {
		return nil, &nodes.NotFoundError{Resource: "node"}
	}
	if node.IsLeaf() {
		return node, nil
	}
	logging.WithNodeContext(s.baseLogger(ctx), node.ID.String(), node.Path).Warn("notes.service.node_not_leaf")
	return nil, fmt.Errorf("%w: %s", ErrNotLeaf, node.Path)
}

func (s *Service) baseLogger(ctx context.Context) interfaces.Logger {
	if ctx != nil {
		return s.logger.WithContext(ctx)
	}
	return s.logger
}

// CacheKey is the cache key under which the parse of text is stored.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
