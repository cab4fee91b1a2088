package notes

import "errors"

var (
	// ErrNotLeaf is returned when a container node is asked to render.
	ErrNotLeaf = errors.New("notes: node is not a leaf")
	// ErrNodeLookupRequired indicates node operations on a service built
	// without a node lookup.
	ErrNodeLookupRequired = errors.New("notes: node lookup not configured")
)
