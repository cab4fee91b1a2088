package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-notes"
	"github.com/goliatone/go-notes/internal/di"
	"github.com/goliatone/go-notes/pkg/interfaces"
)

// Options captures the CLI flags that shape the module.
type Options struct {
	ConfigFile     string
	LogLevel       string
	LogFormat      string
	DBPath         string
	LoggerProvider interfaces.LoggerProvider
}

// LoadConfig starts from the defaults, overlays the optional config file
// and NOTES_* environment variables, then applies the flag overrides.
func LoadConfig(opts Options) (notes.Config, error) {
	cfg := notes.DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)
	v.SetEnvPrefix("NOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := strings.TrimSpace(opts.ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}
	if db := strings.TrimSpace(opts.DBPath); db != "" {
		cfg.Features.Storage = true
		cfg.Storage.Dialect = "sqlite"
		cfg.Storage.DSN = db
	}
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper, cfg notes.Config) {
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("features.storage", cfg.Features.Storage)
	v.SetDefault("features.repository_cache", cfg.Features.RepositoryCache)
	v.SetDefault("features.commands", cfg.Features.Commands)

	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.default_ttl", cfg.Cache.DefaultTTL)
	v.SetDefault("cache.cleanup_interval", cfg.Cache.CleanupInterval)

	v.SetDefault("storage.dialect", cfg.Storage.Dialect)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)

	v.SetDefault("numbering.default_style", cfg.Numbering.DefaultStyle)
}

// BuildModule loads the configuration and constructs the notes module.
func BuildModule(opts Options) (*notes.Module, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := notes.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise notes module: %w", err)
	}
	return module, nil
}
