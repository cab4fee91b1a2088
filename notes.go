// Package notes parses lecture-note markup into an ordered segmentation
// and renders it into numbered, source-resolved documents.
package notes

import (
	"context"

	notescmd "github.com/goliatone/go-notes/internal/commands/notes"
	"github.com/goliatone/go-notes/internal/di"
	"github.com/goliatone/go-notes/internal/document"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
	notesvc "github.com/goliatone/go-notes/internal/notes"
	"github.com/goliatone/go-notes/internal/sources"
)

type (
	ParsedContent  = markup.ParsedContent
	Segment        = markup.Segment
	SegmentKind    = markup.SegmentKind
	ListBlock      = markup.ListBlock
	ListItem       = markup.ListItem
	ListKind       = markup.ListKind
	NumberingStyle = markup.NumberingStyle
	HeadingRef     = markup.HeadingRef

	Document       = document.Document
	Block          = document.Block
	BlockKind      = document.BlockKind
	SourceEntry    = document.SourceEntry
	RenderOptions  = document.Options
	Source         = sources.Source
	Node           = nodes.Node
	NodeKind       = nodes.Kind
	RenderRequest  = notesvc.RenderNodeRequest
	Service        = notesvc.Service
	ServiceMetrics = notesvc.Metrics

	WarmNodeCacheCommand       = notescmd.WarmNodeCacheCommand
	InvalidateNodeCacheCommand = notescmd.InvalidateNodeCacheCommand
)

const (
	StyleNumeric    = markup.StyleNumeric
	StyleAlphabetic = markup.StyleAlphabetic
	StyleNone       = markup.StyleNone
)

// Parse segments text without caching or lookups.
func Parse(text string) *ParsedContent {
	return markup.Parse(text)
}

// Module represents the top level notes runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a notes module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Service returns the configured notes service.
func (m *Module) Service() *Service {
	return m.container.Service()
}

// Parse segments text through the service cache.
func (m *Module) Parse(ctx context.Context, text string) (*ParsedContent, error) {
	return m.container.Service().Parse(ctx, text)
}

// Render parses and assembles text.
func (m *Module) Render(ctx context.Context, text string, opts RenderOptions) (*Document, error) {
	return m.container.Service().Render(ctx, text, opts)
}

// RenderNode renders a stored leaf node.
func (m *Module) RenderNode(ctx context.Context, req RenderRequest) (*Document, error) {
	return m.container.Service().RenderNode(ctx, req)
}

// WarmNodeCache runs the warm command, or calls the service directly when
// the commands feature is off.
func (m *Module) WarmNodeCache(ctx context.Context, cmd WarmNodeCacheCommand) error {
	if handler := m.container.WarmNodeCacheHandler(); handler != nil {
		return handler.Execute(ctx, cmd)
	}
	return m.container.Service().WarmNode(ctx, cmd.NodeID)
}

// InvalidateNodeCache runs the invalidate command, or calls the service
// directly when the commands feature is off.
func (m *Module) InvalidateNodeCache(ctx context.Context, cmd InvalidateNodeCacheCommand) error {
	if handler := m.container.InvalidateNodeCacheHandler(); handler != nil {
		return handler.Execute(ctx, cmd)
	}
	return m.container.Service().InvalidateNode(ctx, cmd.NodeID)
}

// Close releases resources the module opened.
func (m *Module) Close() error {
	return m.container.Close()
}
