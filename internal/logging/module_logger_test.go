package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-notes/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, fields)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type plainLogger struct{}

func (plainLogger) Trace(string, ...any)                          {}
func (plainLogger) Debug(string, ...any)                          {}
func (plainLogger) Info(string, ...any)                           {}
func (plainLogger) Warn(string, ...any)                           {}
func (plainLogger) Error(string, ...any)                          {}
func (plainLogger) Fatal(string, ...any)                          {}
func (p plainLogger) WithContext(context.Context) interfaces.Logger { return p }

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, serviceModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}

	logger = ModuleLogger(&stubProvider{}, serviceModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger when provider returns nil, got %T", logger)
	}
	logger.WithContext(context.Background()).Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	ServiceLogger(provider).Info("with provider")

	if len(provider.requested) != 1 || provider.requested[0] != serviceModule {
		t.Fatalf("expected module %s, got %v", serviceModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != serviceModule {
		t.Fatalf("expected module field %s, got %v", serviceModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = ModuleLogger(provider, "  ")
	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestNamedModuleLoggers(t *testing.T) {
	cases := map[string]func(interfaces.LoggerProvider) interfaces.Logger{
		documentModule: DocumentLogger,
		sourcesModule:  SourcesLogger,
		nodesModule:    NodesLogger,
		commandsModule: CommandsLogger,
	}
	for module, build := range cases {
		provider := &stubProvider{logger: &recordingLogger{}}
		_ = build(provider)
		if len(provider.requested) != 1 || provider.requested[0] != module {
			t.Fatalf("expected request for %s, got %v", module, provider.requested)
		}
	}
}

func TestWithFieldsClonesAndSkipsPlainLoggers(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"node_id": "a"}
	WithFields(rec, fields)
	fields["node_id"] = "b"
	if rec.fields[0]["node_id"] != "a" {
		t.Fatalf("expected fields to be cloned, got %v", rec.fields[0])
	}

	if got := WithFields(plainLogger{}, fields); got != (plainLogger{}) {
		t.Fatalf("expected plain logger returned unchanged, got %T", got)
	}
	if got := WithFields(nil, fields); got != nil {
		t.Fatalf("expected nil logger passthrough, got %T", got)
	}
}

func TestWithNodeContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}
	WithNodeContext(rec, " 42 ", "")
	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldNodeID] != "42" {
		t.Fatalf("unexpected node id field: %v", rec.fields[0])
	}
	if _, ok := rec.fields[0][fieldNodePath]; ok {
		t.Fatalf("expected blank path to be skipped")
	}

	rec = &recordingLogger{}
	WithNodeContext(rec, "", "")
	if len(rec.fields) != 0 {
		t.Fatalf("expected no fields applied, got %v", rec.fields)
	}
}
