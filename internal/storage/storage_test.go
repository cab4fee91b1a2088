package storage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/runtimeconfig"
	"github.com/goliatone/go-notes/internal/sources"
	"github.com/goliatone/go-notes/internal/storage"
)

func memoryConfig(t *testing.T) runtimeconfig.StorageConfig {
	t.Helper()
	return runtimeconfig.StorageConfig{
		Dialect: "sqlite3",
		DSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
}

func TestOpenSQLiteAndCreateTables(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, memoryConfig(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.CreateTables(ctx, db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	// Second run is a no-op.
	if err := storage.CreateTables(ctx, db); err != nil {
		t.Fatalf("create tables again: %v", err)
	}

	srcLookup := sources.NewBunLookup(db)
	if _, err := srcLookup.Create(ctx, &sources.Source{Name: "smith", Link: "https://example.com/smith"}); err != nil {
		t.Fatalf("create source: %v", err)
	}
	if _, err := srcLookup.ByName(ctx, "smith"); err != nil {
		t.Fatalf("lookup source: %v", err)
	}

	nodeLookup := nodes.NewBunLookup(db)
	if _, err := nodeLookup.Create(ctx, &nodes.Node{Kind: nodes.KindLeaf, Title: "Ethics", Path: "/philosophy/ethics"}); err != nil {
		t.Fatalf("create node: %v", err)
	}
	if _, err := nodeLookup.ResolveTag(ctx, "ethics"); err != nil {
		t.Fatalf("resolve tag: %v", err)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	ctx := context.Background()

	if _, err := storage.Open(ctx, runtimeconfig.StorageConfig{Dialect: "sqlite"}); !errors.Is(err, storage.ErrDSNRequired) {
		t.Fatalf("expected ErrDSNRequired, got %v", err)
	}

	_, err := storage.Open(ctx, runtimeconfig.StorageConfig{Dialect: "mysql", DSN: "notes"})
	if !errors.Is(err, runtimeconfig.ErrStorageDialectUnknown) {
		t.Fatalf("expected ErrStorageDialectUnknown, got %v", err)
	}
}

func TestModels(t *testing.T) {
	if got := len(storage.Models()); got != 2 {
		t.Fatalf("expected 2 models, got %d", got)
	}
}
