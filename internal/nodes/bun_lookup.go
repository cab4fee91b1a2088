package nodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-notes/internal/identity"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

// NewRepository creates the go-repository-bun repository for nodes,
// identified by their materialized path.
func NewRepository(db *bun.DB) repository.Repository[*Node] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Node]{
		NewRecord:          func() *Node { return &Node{} },
		GetID:              func(node *Node) uuid.UUID { return node.ID },
		SetID:              func(node *Node, id uuid.UUID) { node.ID = id },
		GetIdentifier:      func() string { return "path" },
		GetIdentifierValue: func(node *Node) string { return node.Path },
	})
}

// BunLookup resolves nodes from the database.
type BunLookup struct {
	repo   repository.Repository[*Node]
	logger interfaces.Logger
}

var _ Lookup = (*BunLookup)(nil)

// BunLookupOption configures a BunLookup.
type BunLookupOption func(*BunLookup)

// WithLogger sets the lookup logger.
func WithLogger(logger interfaces.Logger) BunLookupOption {
	return func(l *BunLookup) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewBunLookup builds an uncached lookup over db.
func NewBunLookup(db *bun.DB, opts ...BunLookupOption) *BunLookup {
	return NewBunLookupWithCache(db, nil, nil, opts...)
}

// NewBunLookupWithCache wraps the repository in go-repository-cache when
// both cacheService and serializer are provided.
func NewBunLookupWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer, opts ...BunLookupOption) *BunLookup {
	base := NewRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	lookup := &BunLookup{repo: base, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(lookup)
		}
	}
	return lookup
}

// Create stores node with a cleaned path, assigning an ID when it has none.
func (l *BunLookup) Create(ctx context.Context, node *Node) (*Node, error) {
	node.Path = CleanPath(node.Path)
	if node.ID == uuid.Nil {
		node.ID = identity.NodeUUID(node.Path)
	}
	record, err := l.repo.Create(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("node repository error: %w", err)
	}
	return record, nil
}

func (l *BunLookup) ByID(ctx context.Context, id uuid.UUID) (*Node, error) {
	record, err := l.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, l.mapError(err, id.String())
	}
	return record, nil
}

func (l *BunLookup) ByPath(ctx context.Context, path string) (*Node, error) {
	record, err := l.repo.GetByIdentifier(ctx, CleanPath(path))
	if err != nil {
		return nil, l.mapError(err, path)
	}
	return record, nil
}

// ResolveTag narrows candidates with a suffix LIKE and applies MatchesTag
// to the ordered results.
func (l *BunLookup) ResolveTag(ctx context.Context, tagPath string) (*Node, error) {
	tag := NormalizeTag(tagPath)
	if tag == "" {
		return nil, l.mapError(nil, tagPath)
	}

	records, _, err := l.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("LOWER(?TableAlias.path) LIKE ?", "%"+tag).
				OrderExpr("?TableAlias.path ASC")
		}),
	)
	if err != nil {
		return nil, l.mapError(err, tagPath)
	}
	for _, record := range records {
		if MatchesTag(record.Path, tag) {
			return record, nil
		}
	}
	return nil, l.mapError(nil, tagPath)
}

func (l *BunLookup) mapError(err error, key string) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) || goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		logging.WithFields(l.logger, map[string]any{"key": key}).Debug("nodes.lookup.not_found")
		return &NotFoundError{Resource: "node", Key: key}
	}
	logging.WithFields(l.logger, map[string]any{"key": key, "error": err}).Error("nodes.lookup.failed")
	return fmt.Errorf("node repository error: %w", err)
}
