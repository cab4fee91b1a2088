package nodes_test

import (
	"context"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"

	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/pkg/testsupport"
)

func newLookup(t *testing.T, cached bool) *nodes.BunLookup {
	t.Helper()
	db, err := testsupport.NewBunDB(t.Name(), (*nodes.Node)(nil))
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if !cached {
		return nodes.NewBunLookup(db)
	}
	cfg := repocache.DefaultConfig()
	cfg.TTL = time.Minute
	svc, err := repocache.NewCacheService(cfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	return nodes.NewBunLookupWithCache(db, svc, repocache.NewDefaultKeySerializer())
}

func seed(t *testing.T, lookup *nodes.BunLookup) map[string]*nodes.Node {
	t.Helper()
	ctx := context.Background()
	parent := uuid.MustParse("00000000-0000-0000-0000-00000000c001")

	seeded := map[string]*nodes.Node{}
	for _, node := range []*nodes.Node{
		{ID: parent, Kind: nodes.KindContainer, Title: "Philosophy", Slug: "philosophy", Path: "/philosophy"},
		{ParentID: &parent, Kind: nodes.KindLeaf, Title: "Ethics", Slug: "ethics", Path: "/philosophy/ethics", Content: `\heading{Virtue}`},
		{Kind: nodes.KindLeaf, Title: "Preface", Slug: "preface", Path: "history/preface"},
	} {
		created, err := lookup.Create(ctx, node)
		if err != nil {
			t.Fatalf("create node %s: %v", node.Path, err)
		}
		seeded[created.Path] = created
	}
	return seeded
}

func TestBunLookupQueries(t *testing.T) {
	for _, cached := range []bool{false, true} {
		name := "uncached"
		if cached {
			name = "cached"
		}
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			lookup := newLookup(t, cached)
			seeded := seed(t, lookup)

			ethics := seeded["/philosophy/ethics"]
			byID, err := lookup.ByID(ctx, ethics.ID)
			if err != nil {
				t.Fatalf("ByID returned error: %v", err)
			}
			if byID.Content != `\heading{Virtue}` {
				t.Fatalf("unexpected content: %q", byID.Content)
			}
			if byID.ParentID == nil || byID.ParentID.String() != "00000000-0000-0000-0000-00000000c001" {
				t.Fatalf("unexpected parent: %v", byID.ParentID)
			}

			byPath, err := lookup.ByPath(ctx, "history/preface/")
			if err != nil {
				t.Fatalf("ByPath returned error: %v", err)
			}
			if byPath.Title != "Preface" {
				t.Fatalf("unexpected node: %+v", byPath)
			}

			tagged, err := lookup.ResolveTag(ctx, "Ethics")
			if err != nil {
				t.Fatalf("ResolveTag returned error: %v", err)
			}
			if tagged.ID != ethics.ID {
				t.Fatalf("expected ethics node, got %+v", tagged)
			}

			if _, err := lookup.ResolveTag(ctx, "metaphysics"); !nodes.IsNotFound(err) {
				t.Fatalf("expected not found, got %v", err)
			}
			if _, err := lookup.ByID(ctx, uuid.New()); !nodes.IsNotFound(err) {
				t.Fatalf("expected not found, got %v", err)
			}
		})
	}
}
