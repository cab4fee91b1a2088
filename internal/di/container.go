package di

import (
	"context"
	"fmt"
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-notes/internal/adapters/cache"
	"github.com/goliatone/go-notes/internal/adapters/noop"
	"github.com/goliatone/go-notes/internal/commands"
	notescmd "github.com/goliatone/go-notes/internal/commands/notes"
	"github.com/goliatone/go-notes/internal/document"
	"github.com/goliatone/go-notes/internal/logging"
	"github.com/goliatone/go-notes/internal/logging/gologger"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/notes"
	"github.com/goliatone/go-notes/internal/runtimeconfig"
	"github.com/goliatone/go-notes/internal/sources"
	"github.com/goliatone/go-notes/internal/storage"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

// Container wires module dependencies. Without storage it serves empty
// in-memory lookups, so citations and tags render unresolved.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	bunDB         *bun.DB
	ownsDB        bool
	cache         interfaces.CacheProvider
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	metrics       notes.Metrics

	sourceLookup sources.Lookup
	nodeLookup   nodes.Lookup

	assembler *document.Assembler
	service   *notes.Service

	warmHandler       *notescmd.WarmNodeCacheHandler
	invalidateHandler *notescmd.InvalidateNodeCacheHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an open database. The container does not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the parse cache provider.
func WithCache(provider interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cache = provider
	}
}

// WithRepositoryCache overrides the go-repository-cache service used to
// decorate the bun repositories.
func WithRepositoryCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithSourceLookup overrides the source registry lookup.
func WithSourceLookup(lookup sources.Lookup) Option {
	return func(c *Container) {
		c.sourceLookup = lookup
	}
}

// WithNodeLookup overrides the node lookup.
func WithNodeLookup(lookup nodes.Lookup) Option {
	return func(c *Container) {
		c.nodeLookup = lookup
	}
}

// WithMetrics wires a metrics recorder into the notes service.
func WithMetrics(metrics notes.Metrics) Option {
	return func(c *Container) {
		c.metrics = metrics
	}
}

// NewContainer validates cfg and builds the module graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureCache()
	c.configureLookups()
	c.configureService()
	c.configureCommands()

	c.logger.Debug("notes.container.ready",
		"storage", c.bunDB != nil,
		"cache", c.Config.Cache.Enabled,
		"commands", c.Config.Features.Commands,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider == nil && c.Config.Features.Logger {
		switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
		case "gologger":
			provider, err := gologger.NewProvider(gologger.Config{
				Level:     c.Config.Logging.Level,
				Format:    c.Config.Logging.Format,
				AddSource: c.Config.Logging.AddSource,
				Focus:     c.Config.Logging.Focus,
			})
			if err != nil {
				return fmt.Errorf("di: logger provider: %w", err)
			}
			c.loggerProvider = provider
		}
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "notes.container")
	return nil
}

func (c *Container) configureStorage() error {
	if c.bunDB != nil || !c.Config.Features.Storage {
		return nil
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, c.Config.Storage)
	if err != nil {
		return err
	}
	if err := storage.CreateTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}
	c.bunDB = db
	c.ownsDB = true
	return nil
}

func (c *Container) configureCache() {
	if c.cache == nil {
		if c.Config.Cache.Enabled {
			c.cache = cache.NewMemory(cache.Config{
				DefaultTTL:      c.Config.Cache.DefaultTTL,
				CleanupInterval: c.Config.Cache.CleanupInterval,
			})
		} else {
			c.cache = noop.Cache()
		}
	}

	if !c.Config.Cache.Enabled || !c.Config.Features.RepositoryCache {
		return
	}
	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Cache.DefaultTTL > 0 {
			cfg.TTL = c.Config.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			logging.WithFields(c.logger, map[string]any{"error": err}).Warn("notes.container.repository_cache_failed")
		} else {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureLookups() {
	if c.bunDB != nil {
		if c.sourceLookup == nil {
			c.sourceLookup = sources.NewBunLookup(c.bunDB,
				sources.WithCache(c.cacheService, c.keySerializer),
				sources.WithLogger(logging.SourcesLogger(c.loggerProvider)),
			)
		}
		if c.nodeLookup == nil {
			c.nodeLookup = nodes.NewBunLookupWithCache(c.bunDB, c.cacheService, c.keySerializer,
				nodes.WithLogger(logging.NodesLogger(c.loggerProvider)),
			)
		}
	}
	if c.sourceLookup == nil {
		c.sourceLookup = sources.NewMemoryLookup()
	}
	if c.nodeLookup == nil {
		c.nodeLookup = nodes.NewMemoryLookup()
	}
}

func (c *Container) configureService() {
	c.assembler = document.NewAssembler(
		document.WithSourceLookup(c.sourceLookup),
		document.WithNodeLookup(c.nodeLookup),
		document.WithLogger(logging.DocumentLogger(c.loggerProvider)),
		document.WithDefaultStyle(markup.NumberingStyle(strings.ToLower(strings.TrimSpace(c.Config.Numbering.DefaultStyle)))),
	)
	c.service = notes.NewService(
		notes.WithCache(c.cache, c.Config.Cache.DefaultTTL),
		notes.WithAssembler(c.assembler),
		notes.WithNodeLookup(c.nodeLookup),
		notes.WithLogger(logging.ServiceLogger(c.loggerProvider)),
		notes.WithMetrics(c.metrics),
	)
}

func (c *Container) configureCommands() {
	if !c.Config.Features.Commands {
		return
	}

	logger := commands.CommandLogger(c.loggerProvider, "notes")
	gates := notescmd.FeatureGates{
		CacheEnabled: func() bool { return c.Config.Cache.Enabled },
	}
	c.warmHandler = notescmd.NewWarmNodeCacheHandler(c.service, logger, gates,
		commands.WithTelemetry(commands.DefaultTelemetry[notescmd.WarmNodeCacheCommand](logger)),
	)
	c.invalidateHandler = notescmd.NewInvalidateNodeCacheHandler(c.service, logger, gates,
		commands.WithTelemetry(commands.DefaultTelemetry[notescmd.InvalidateNodeCacheCommand](logger)),
	)
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c.ownsDB && c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}

// Service returns the notes service.
func (c *Container) Service() *notes.Service {
	return c.service
}

// Assembler returns the document assembler shared with the service.
func (c *Container) Assembler() *document.Assembler {
	return c.assembler
}

// SourceLookup returns the configured source registry lookup.
func (c *Container) SourceLookup() sources.Lookup {
	return c.sourceLookup
}

// NodeLookup returns the configured node lookup.
func (c *Container) NodeLookup() nodes.Lookup {
	return c.nodeLookup
}

// CacheProvider returns the parse cache.
func (c *Container) CacheProvider() interfaces.CacheProvider {
	return c.cache
}

// LoggerProvider returns the logger provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database, nil without storage.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// WarmNodeCacheHandler returns the warm command handler, nil unless the
// commands feature is enabled.
func (c *Container) WarmNodeCacheHandler() *notescmd.WarmNodeCacheHandler {
	return c.warmHandler
}

// InvalidateNodeCacheHandler returns the invalidate command handler, nil
// unless the commands feature is enabled.
func (c *Container) InvalidateNodeCacheHandler() *notescmd.InvalidateNodeCacheHandler {
	return c.invalidateHandler
}
