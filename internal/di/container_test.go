package di_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-notes/internal/adapters/cache"
	notescmd "github.com/goliatone/go-notes/internal/commands/notes"
	"github.com/goliatone/go-notes/internal/di"
	"github.com/goliatone/go-notes/internal/document"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/runtimeconfig"
	"github.com/goliatone/go-notes/internal/sources"
)

const lecture = `\heading{Virtue}\cite{aristotle}\tag{ethics}`

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Numbering.DefaultStyle = "roman"

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrNumberingStyleInvalid) {
		t.Fatalf("expected ErrNumberingStyleInvalid, got %v", err)
	}
}

func TestContainerDefaultsRenderUnresolved(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	if _, ok := container.CacheProvider().(*cache.Memory); !ok {
		t.Fatalf("expected memory cache, got %T", container.CacheProvider())
	}
	if container.BunDB() != nil {
		t.Fatal("expected no database without the storage feature")
	}

	doc, err := container.Service().Render(context.Background(), lecture, document.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(doc.Sources) != 1 || doc.Sources[0].Source != nil {
		t.Fatalf("expected one unresolved source, got %+v", doc.Sources)
	}
	if doc.Sources[0].Href != "#source-1" {
		t.Fatalf("expected fragment href, got %q", doc.Sources[0].Href)
	}
}

func TestContainerUsesConfiguredDefaultStyle(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Numbering.DefaultStyle = "alphabetic"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	doc, err := container.Service().Render(context.Background(), lecture, document.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.Blocks[0].Kind != document.BlockHeading || doc.Blocks[0].Label != "A" {
		t.Fatalf("expected alphabetic heading label, got %+v", doc.Blocks[0])
	}
}

func TestContainerWiresStorageLookups(t *testing.T) {
	ctx := context.Background()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Storage = true
	cfg.Features.RepositoryCache = true
	cfg.Storage.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	srcLookup, ok := container.SourceLookup().(*sources.BunLookup)
	if !ok {
		t.Fatalf("expected bun source lookup, got %T", container.SourceLookup())
	}
	if _, err := srcLookup.Create(ctx, &sources.Source{Name: "aristotle", Link: "https://example.com/nicomachean"}); err != nil {
		t.Fatalf("create source: %v", err)
	}
	nodeLookup, ok := container.NodeLookup().(*nodes.BunLookup)
	if !ok {
		t.Fatalf("expected bun node lookup, got %T", container.NodeLookup())
	}
	if _, err := nodeLookup.Create(ctx, &nodes.Node{Kind: nodes.KindLeaf, Title: "Ethics", Path: "/philosophy/ethics"}); err != nil {
		t.Fatalf("create node: %v", err)
	}

	doc, err := container.Service().Render(ctx, lecture, document.Options{Style: markup.StyleNumeric})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.Sources[0].Href != "https://example.com/nicomachean" {
		t.Fatalf("expected resolved source link, got %q", doc.Sources[0].Href)
	}
	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Kind != document.BlockTag || last.Href != "/philosophy/ethics" || last.Title != "Ethics" {
		t.Fatalf("expected resolved tag, got %+v", last)
	}
}

func TestContainerCommands(t *testing.T) {
	ctx := context.Background()
	lookup := nodes.NewMemoryLookup()
	node := lookup.Add(nodes.Node{Kind: nodes.KindLeaf, Title: "Ethics", Path: "/ethics", Content: lecture})

	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true
	container, err := di.NewContainer(cfg, di.WithNodeLookup(lookup))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	warm := container.WarmNodeCacheHandler()
	if warm == nil {
		t.Fatal("expected warm handler when commands are enabled")
	}
	if err := warm.Execute(ctx, notescmd.WarmNodeCacheCommand{NodeID: node.ID}); err != nil {
		t.Fatalf("warm: %v", err)
	}
	memory := container.CacheProvider().(*cache.Memory)
	if memory.Len() != 1 {
		t.Fatalf("expected warmed cache, got %d entries", memory.Len())
	}
	if err := container.InvalidateNodeCacheHandler().Execute(ctx, notescmd.InvalidateNodeCacheCommand{NodeID: node.ID}); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if memory.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", memory.Len())
	}
}

func TestContainerWithoutCommandsHasNoHandlers(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.WarmNodeCacheHandler() != nil || container.InvalidateNodeCacheHandler() != nil {
		t.Fatal("expected no command handlers")
	}
}
