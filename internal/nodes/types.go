// Package nodes loads content nodes and resolves \tag{} paths against the
// content hierarchy.
package nodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Kind distinguishes text-bearing leaves from structural containers.
type Kind string

const (
	KindLeaf      Kind = "leaf"
	KindContainer Kind = "container"
)

// Node is one entry of the content hierarchy. Path is the materialized
// path ("/parent-slug/slug"); only leaves carry markup in Content.
type Node struct {
	bun.BaseModel `bun:"table:nodes,alias:n"`

	ID       uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	ParentID *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Kind     Kind       `bun:"kind,notnull" json:"kind"`
	Title    string     `bun:"title,notnull" json:"title"`
	Slug     string     `bun:"slug,notnull" json:"slug"`
	Path     string     `bun:"path,notnull,unique" json:"path"`
	Content  string     `bun:"content" json:"content,omitempty"`
}

// IsLeaf reports whether the node holds parseable text.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Kind == KindLeaf
}

// Lookup is the read side of the content hierarchy.
type Lookup interface {
	ByID(ctx context.Context, id uuid.UUID) (*Node, error)
	ByPath(ctx context.Context, path string) (*Node, error)
	ResolveTag(ctx context.Context, tagPath string) (*Node, error)
}

// NotFoundError is returned when no node matches the key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
