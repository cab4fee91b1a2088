package nodes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-notes/internal/identity"
)

// MemoryLookup holds nodes in memory, mainly for files loaded from disk
// and for tests.
type MemoryLookup struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Node
	byPath map[string]*Node
}

var _ Lookup = (*MemoryLookup)(nil)

// NewMemoryLookup returns a lookup seeded with nodes.
func NewMemoryLookup(nodes ...Node) *MemoryLookup {
	m := &MemoryLookup{
		byID:   make(map[uuid.UUID]*Node),
		byPath: make(map[string]*Node),
	}
	for _, node := range nodes {
		m.Add(node)
	}
	return m
}

// Add stores node under its ID and cleaned path, deriving the ID from
// the path when the node has none.
func (m *MemoryLookup) Add(node Node) Node {
	m.mu.Lock()
	defer m.mu.Unlock()

	node.Path = CleanPath(node.Path)
	if node.ID == uuid.Nil {
		node.ID = identity.NodeUUID(node.Path)
	}
	stored := node
	m.byID[stored.ID] = &stored
	m.byPath[stored.Path] = &stored
	return stored
}

func (m *MemoryLookup) ByID(_ context.Context, id uuid.UUID) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if node, ok := m.byID[id]; ok {
		copied := *node
		return &copied, nil
	}
	return nil, &NotFoundError{Resource: "node", Key: id.String()}
}

func (m *MemoryLookup) ByPath(_ context.Context, path string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if node, ok := m.byPath[CleanPath(path)]; ok {
		copied := *node
		return &copied, nil
	}
	return nil, &NotFoundError{Resource: "node", Key: path}
}

// ResolveTag returns the first node, in path order, addressed by tagPath.
func (m *MemoryLookup) ResolveTag(_ context.Context, tagPath string) (*Node, error) {
	tag := NormalizeTag(tagPath)

	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.byPath))
	for path := range m.byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if MatchesTag(path, tag) {
			copied := *m.byPath[path]
			return &copied, nil
		}
	}
	return nil, &NotFoundError{Resource: "node", Key: tagPath}
}
