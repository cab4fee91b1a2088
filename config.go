package notes

import "github.com/goliatone/go-notes/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired      = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown       = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid          = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid         = runtimeconfig.ErrLoggingFormatInvalid
	ErrCacheTTLInvalid              = runtimeconfig.ErrCacheTTLInvalid
	ErrStorageDialectUnknown        = runtimeconfig.ErrStorageDialectUnknown
	ErrStorageDSNRequired           = runtimeconfig.ErrStorageDSNRequired
	ErrNumberingStyleInvalid        = runtimeconfig.ErrNumberingStyleInvalid
	ErrRepositoryCacheRequiresCache = runtimeconfig.ErrRepositoryCacheRequiresCache
)

type (
	Config          = runtimeconfig.Config
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
	CacheConfig     = runtimeconfig.CacheConfig
	StorageConfig   = runtimeconfig.StorageConfig
	NumberingConfig = runtimeconfig.NumberingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
