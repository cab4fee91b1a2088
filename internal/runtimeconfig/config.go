package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrLoggingProviderRequired = errors.New("notes config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("notes config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("notes config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("notes config: logging format is invalid")
	ErrCacheTTLInvalid         = errors.New("notes config: cache ttl must be zero or positive")
	ErrStorageDialectUnknown   = errors.New("notes config: storage dialect is invalid")
	ErrStorageDSNRequired      = errors.New("notes config: storage dsn is required when storage is enabled")
	ErrNumberingStyleInvalid   = errors.New("notes config: numbering style is invalid")
)

// ErrRepositoryCacheRequiresCache keeps repository caching behind the cache switch.
var ErrRepositoryCacheRequiresCache = errors.New("notes config: repository cache requires cache to be enabled")

// Config aggregates feature flags and adapter settings for the notes module.
type Config struct {
	Features  Features        `mapstructure:"features"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Numbering NumberingConfig `mapstructure:"numbering"`
}

// Features toggles module functionality.
type Features struct {
	Logger          bool `mapstructure:"logger"`
	Storage         bool `mapstructure:"storage"`
	RepositoryCache bool `mapstructure:"repository_cache"`
	Commands        bool `mapstructure:"commands"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// CacheConfig captures parse cache behaviour.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultTTL      time.Duration `mapstructure:"default_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// StorageConfig selects the bun dialect and connection string for the
// source and node tables.
type StorageConfig struct {
	Dialect string `mapstructure:"dialect"`
	DSN     string `mapstructure:"dsn"`
}

// NumberingConfig sets the heading style a rendering pass starts with.
type NumberingConfig struct {
	DefaultStyle string `mapstructure:"default_style"`
}

// DefaultConfig returns defaults suitable for local use: storage
// off, an in-memory parse cache and numeric headings.
func DefaultConfig() Config {
	return Config{
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Cache: CacheConfig{
			Enabled:         true,
			DefaultTTL:      10 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Storage: StorageConfig{
			Dialect: "sqlite",
		},
		Numbering: NumberingConfig{
			DefaultStyle: "numeric",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Cache.DefaultTTL < 0 {
		return fmt.Errorf("%w: default_ttl", ErrCacheTTLInvalid)
	}
	if cfg.Cache.CleanupInterval < 0 {
		return fmt.Errorf("%w: cleanup_interval", ErrCacheTTLInvalid)
	}
	if cfg.Features.RepositoryCache && !cfg.Cache.Enabled {
		return ErrRepositoryCacheRequiresCache
	}
	if cfg.Features.Storage {
		dialect := NormalizeDialect(cfg.Storage.Dialect)
		if !isSupportedDialect(dialect) {
			return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, cfg.Storage.Dialect)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if style := strings.TrimSpace(cfg.Numbering.DefaultStyle); style != "" && !isSupportedStyle(style) {
		return fmt.Errorf("%w: %s", ErrNumberingStyleInvalid, style)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeDialect lowercases dialect and folds the sqlite3 and pg aliases.
func NormalizeDialect(dialect string) string {
	switch value := strings.ToLower(strings.TrimSpace(dialect)); value {
	case "sqlite3":
		return "sqlite"
	case "pg", "postgresql":
		return "postgres"
	default:
		return value
	}
}

func isSupportedDialect(dialect string) bool {
	return dialect == "sqlite" || dialect == "postgres"
}

func isSupportedStyle(style string) bool {
	switch strings.ToLower(style) {
	case "numeric", "alphabetic", "none":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
