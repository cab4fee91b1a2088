package sources

import (
	"context"
	"strings"
	"sync"
)

// MemoryLookup keeps sources in maps keyed by name and link.
type MemoryLookup struct {
	mu     sync.RWMutex
	byName map[string]*Source
	byLink map[string]*Source
}

var _ Lookup = (*MemoryLookup)(nil)

// NewMemoryLookup returns a lookup seeded with sources.
func NewMemoryLookup(sources ...Source) *MemoryLookup {
	m := &MemoryLookup{
		byName: make(map[string]*Source),
		byLink: make(map[string]*Source),
	}
	for _, source := range sources {
		m.Add(source)
	}
	return m
}

// Add registers source, replacing any entry with the same name or link.
func (m *MemoryLookup) Add(source Source) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := source
	m.byName[stored.Name] = &stored
	if link := strings.TrimSpace(stored.Link); link != "" {
		m.byLink[link] = &stored
	}
}

func (m *MemoryLookup) ByName(_ context.Context, name string) (*Source, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if source, ok := m.byName[name]; ok {
		copied := *source
		return &copied, nil
	}
	return nil, &NotFoundError{Resource: "source", Key: name}
}

func (m *MemoryLookup) ByLink(_ context.Context, link string) (*Source, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if source, ok := m.byLink[strings.TrimSpace(link)]; ok {
		copied := *source
		return &copied, nil
	}
	return nil, &NotFoundError{Resource: "source", Key: link}
}
