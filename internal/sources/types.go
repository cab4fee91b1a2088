// Package sources resolves citation names against the source registry.
package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Source is a citable reference. Name is what \cite{} refers to; Link is
// the external URL, if any.
type Source struct {
	bun.BaseModel `bun:"table:sources,alias:src"`

	ID   uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name string    `bun:"name,notnull,unique" json:"name"`
	Link string    `bun:"link" json:"link,omitempty"`
}

// Lookup is the read side of the source registry.
type Lookup interface {
	ByName(ctx context.Context, name string) (*Source, error)
	ByLink(ctx context.Context, link string) (*Source, error)
}

// NotFoundError is returned when no source matches the key.
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
