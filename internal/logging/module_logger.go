package logging

import (
	"strings"

	"github.com/goliatone/go-notes/pkg/interfaces"
)

const (
	rootModule     = "notes"
	documentModule = "notes.document"
	serviceModule  = "notes.service"
	sourcesModule  = "notes.sources"
	nodesModule    = "notes.nodes"
	commandsModule = "notes.commands"
)

const (
	fieldNodeID   = "node_id"
	fieldNodePath = "node_path"
)

// ModuleLogger resolves the logger for module from provider, falling back
// to NoOp, and tags it with a "module" field. An empty module selects the
// root namespace.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}

	var logger interfaces.Logger
	if provider != nil {
		logger = provider.GetLogger(module)
	}
	if logger == nil {
		logger = NoOp()
	}
	return WithFields(logger, map[string]any{"module": module})
}

// DocumentLogger is used by the document assembler.
func DocumentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentModule)
}

// ServiceLogger is used by the notes service.
func ServiceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, serviceModule)
}

// SourcesLogger is used by source registry lookups.
func SourcesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sourcesModule)
}

// NodesLogger is used by content node lookups.
func NodesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, nodesModule)
}

// CommandsLogger is used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithNodeContext adds node identification fields, skipping blank values.
func WithNodeContext(logger interfaces.Logger, id, path string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldNodeID] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldNodePath] = trimmed
	}
	return WithFields(logger, fields)
}
