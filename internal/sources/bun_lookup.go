package sources

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

// NewRepository creates the go-repository-bun repository for sources,
// identified by name.
func NewRepository(db *bun.DB) repository.Repository[*Source] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Source]{
		NewRecord:          func() *Source { return &Source{} },
		GetID:              func(source *Source) uuid.UUID { return source.ID },
		SetID:              func(source *Source, id uuid.UUID) { source.ID = id },
		GetIdentifier:      func() string { return "name" },
		GetIdentifierValue: func(source *Source) string { return source.Name },
	})
}

// BunLookup resolves sources from the database.
type BunLookup struct {
	repo   repository.Repository[*Source]
	logger interfaces.Logger
}

var _ Lookup = (*BunLookup)(nil)

// BunLookupOption configures a BunLookup.
type BunLookupOption func(*bunLookupConfig)

type bunLookupConfig struct {
	cacheService cache.CacheService
	serializer   cache.KeySerializer
	logger       interfaces.Logger
}

// WithCache wraps the repository in go-repository-cache. Both arguments
// are required for caching to be enabled.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) BunLookupOption {
	return func(cfg *bunLookupConfig) {
		cfg.cacheService = service
		cfg.serializer = serializer
	}
}

// WithLogger sets the lookup logger.
func WithLogger(logger interfaces.Logger) BunLookupOption {
	return func(cfg *bunLookupConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewBunLookup builds a lookup over db.
func NewBunLookup(db *bun.DB, opts ...BunLookupOption) *BunLookup {
	cfg := bunLookupConfig{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	base := NewRepository(db)
	if cfg.cacheService != nil && cfg.serializer != nil {
		base = repositorycache.New(base, cfg.cacheService, cfg.serializer)
	}
	return &BunLookup{repo: base, logger: cfg.logger}
}

// Create stores a source, assigning an ID when it has none.
func (l *BunLookup) Create(ctx context.Context, source *Source) (*Source, error) {
	if source.ID == uuid.Nil {
		source.ID = identity.SourceUUID(source.Name)
	}
	record, err := l.repo.Create(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("source repository error: %w", err)
	}
	return record, nil
}

func (l *BunLookup) ByName(ctx context.Context, name string) (*Source, error) {
	record, err := l.repo.GetByIdentifier(ctx, name)
	if err != nil {
		return nil, l.mapError(err, name)
	}
	return record, nil
}

func (l *BunLookup) ByLink(ctx context.Context, link string) (*Source, error) {
	records, _, err := l.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.link = ?", link)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, l.mapError(err, link)
	}
	if len(records) == 0 {
		return nil, l.mapError(nil, link)
	}
	return records[0], nil
}

// mapError turns repository misses into NotFoundError. A nil err means the
// query succeeded with no rows.
func (l *BunLookup) mapError(err error, key string) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) || goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		logging.WithFields(l.logger, map[string]any{"key": key}).Debug("sources.lookup.not_found")
		return &NotFoundError{Resource: "source", Key: key}
	}
	logging.WithFields(l.logger, map[string]any{"key": key, "error": err}).Error("sources.lookup.failed")
	return fmt.Errorf("source repository error: %w", err)
}
