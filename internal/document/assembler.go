// Package document walks parsed markup in order and produces a numbered,
// resolved view model for renderers.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-notes/internal/embed"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/numbering"
	"github.com/goliatone/go-notes/internal/sources"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

// SourceLookup resolves citation names against the source registry.
type SourceLookup interface {
	ByName(ctx context.Context, name string) (*sources.Source, error)
	ByLink(ctx context.Context, link string) (*sources.Source, error)
}

// NodeLookup resolves tag paths against the content hierarchy.
type NodeLookup interface {
	ResolveTag(ctx context.Context, tagPath string) (*nodes.Node, error)
}

// Options tune a single Assemble call.
type Options struct {
	// Style overrides the assembler default for this pass.
	Style markup.NumberingStyle
}

// Assembler turns ParsedContent into Documents. It is stateless between
// calls; numbering state lives only for the duration of Assemble.
type Assembler struct {
	sources      SourceLookup
	nodes        NodeLookup
	logger       interfaces.Logger
	defaultStyle markup.NumberingStyle
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithSourceLookup enables citation resolution.
func WithSourceLookup(lookup SourceLookup) Option {
	return func(a *Assembler) {
		a.sources = lookup
	}
}

// WithNodeLookup enables tag resolution.
func WithNodeLookup(lookup NodeLookup) Option {
	return func(a *Assembler) {
		a.nodes = lookup
	}
}

// WithLogger sets the assembler logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDefaultStyle sets the heading style used when Options.Style is empty.
func WithDefaultStyle(style markup.NumberingStyle) Option {
	return func(a *Assembler) {
		if style != "" {
			a.defaultStyle = style
		}
	}
}

// NewAssembler builds an assembler. Without lookups citations and tags are
// rendered from their raw names.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		logger:       logging.NoOp(),
		defaultStyle: markup.StyleNumeric,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Assemble walks parsed in order. Registry misses degrade to unresolved
// citations and plain tag paths; any other lookup failure aborts.
func (a *Assembler) Assemble(ctx context.Context, parsed *markup.ParsedContent, opts Options) (*Document, error) {
	if parsed == nil {
		return &Document{Blocks: []Block{}, Sources: []SourceEntry{}}, nil
	}

	style := opts.Style
	if style == "" {
		style = a.defaultStyle
	}
	numberer := numbering.NewHeadingNumberer(style)
	numbers := numbering.NumberCitations(parsed.Citations)

	entries, err := a.resolveSources(ctx, parsed.Citations, numbers)
	if err != nil {
		return nil, err
	}
	hrefs := make(map[string]string, len(entries))
	for _, entry := range entries {
		hrefs[entry.Name] = entry.Href
	}

	doc := &Document{Blocks: make([]Block, 0, len(parsed.Segments)), Sources: entries}
	tags := map[string]*nodes.Node{}

	for _, segment := range parsed.Segments {
		switch segment.Kind {
		case markup.SegmentText:
			if segment.Text == "" {
				continue
			}
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockText, Text: segment.Text})

		case markup.SegmentNumberingControl:
			numberer.SetStyle(segment.Style)

		case markup.SegmentHeading:
			label, _ := numberer.Number(segment.Level)
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockHeading,
				Level: segment.Level,
				Text:  segment.Text,
				Label: label,
			})

		case markup.SegmentCitation:
			doc.Blocks = append(doc.Blocks, Block{
				Kind:   BlockCitation,
				Name:   segment.Name,
				Number: numbers[segment.Name],
				Href:   hrefs[segment.Name],
			})

		case markup.SegmentEmbed:
			player, _ := embed.PlayerURL(segment.URL)
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockEmbed, URL: segment.URL, PlayerURL: player})

		case markup.SegmentLink:
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockLink, Text: segment.Text, URL: segment.URL})

		case markup.SegmentTag:
			block, err := a.tagBlock(ctx, segment.Path, tags)
			if err != nil {
				return nil, err
			}
			doc.Blocks = append(doc.Blocks, block)

		case markup.SegmentBullet:
			doc.Blocks = appendBullet(doc.Blocks, segment.Text)

		case markup.SegmentList:
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockList, List: segment.List})
		}
	}

	return doc, nil
}

func (a *Assembler) resolveSources(ctx context.Context, citations []string, numbers map[string]int) ([]SourceEntry, error) {
	entries := make([]SourceEntry, 0, len(citations))
	for _, name := range citations {
		source, err := a.lookupSource(ctx, name)
		if err != nil {
			return nil, err
		}
		entry := SourceEntry{Number: numbers[name], Name: name, Source: source}
		switch {
		case source != nil && source.Link != "":
			entry.Href = source.Link
		case isAbsoluteURL(name):
			entry.Href = name
		default:
			entry.Href = fmt.Sprintf("#source-%d", entry.Number)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// lookupSource tries the name first and, for URL-shaped names, the link.
func (a *Assembler) lookupSource(ctx context.Context, name string) (*sources.Source, error) {
	if a.sources == nil {
		return nil, nil
	}

	source, err := a.sources.ByName(ctx, name)
	if err == nil {
		return source, nil
	}
	if !sources.IsNotFound(err) {
		return nil, a.lookupFailed(err, "source", name)
	}
	if !isAbsoluteURL(name) {
		return nil, nil
	}

	source, err = a.sources.ByLink(ctx, name)
	if err == nil {
		return source, nil
	}
	if !sources.IsNotFound(err) {
		return nil, a.lookupFailed(err, "source", name)
	}
	return nil, nil
}

func (a *Assembler) tagBlock(ctx context.Context, path string, resolved map[string]*nodes.Node) (Block, error) {
	block := Block{Kind: BlockTag, Path: path, Href: tagHref(path)}
	if a.nodes == nil || isAbsoluteURL(path) {
		return block, nil
	}

	node, seen := resolved[path]
	if !seen {
		var err error
		node, err = a.nodes.ResolveTag(ctx, path)
		if err != nil {
			if !nodes.IsNotFound(err) {
				return Block{}, a.lookupFailed(err, "node", path)
			}
			logging.WithFields(a.logger, map[string]any{"tag": path}).Debug("document.tag.unresolved")
			node = nil
		}
		resolved[path] = node
	}
	if node != nil {
		block.Href = node.Path
		block.Title = node.Title
	}
	return block, nil
}

func (a *Assembler) lookupFailed(err error, resource, key string) error {
	logging.WithFields(a.logger, map[string]any{
		"resource": resource,
		"key":      key,
		"error":    err,
	}).Error("document.lookup.failed")
	return fmt.Errorf("document: resolve %s %q: %w", resource, key, err)
}

// appendBullet groups consecutive legacy bullets. Whitespace-only text
// between two bullets does not split the group.
func appendBullet(blocks []Block, text string) []Block {
	last := len(blocks) - 1
	if last >= 0 && blocks[last].Kind == BlockText && strings.TrimSpace(blocks[last].Text) == "" &&
		last >= 1 && blocks[last-1].Kind == BlockBullets {
		blocks = blocks[:last]
		last--
	}
	if last >= 0 && blocks[last].Kind == BlockBullets {
		blocks[last].Items = append(blocks[last].Items, text)
		return blocks
	}
	return append(blocks, Block{Kind: BlockBullets, Items: []string{text}})
}

func tagHref(path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	return "/" + strings.TrimLeft(path, "/")
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
