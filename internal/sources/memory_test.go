package sources

import (
	"context"
	"testing"
)

func TestMemoryLookup(t *testing.T) {
	ctx := context.Background()
	lookup := NewMemoryLookup(
		Source{Name: "smith", Link: "https://example.org/smith"},
		Source{Name: "jones"},
	)

	source, err := lookup.ByName(ctx, "smith")
	if err != nil {
		t.Fatalf("ByName returned error: %v", err)
	}
	if source.Link != "https://example.org/smith" {
		t.Fatalf("unexpected link: %q", source.Link)
	}

	source, err = lookup.ByLink(ctx, " https://example.org/smith ")
	if err != nil || source.Name != "smith" {
		t.Fatalf("expected smith by link, got %+v, %v", source, err)
	}

	if _, err := lookup.ByName(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := lookup.ByLink(ctx, ""); !IsNotFound(err) {
		t.Fatalf("expected empty link to miss, got %v", err)
	}
}

func TestMemoryLookupReturnsCopies(t *testing.T) {
	ctx := context.Background()
	lookup := NewMemoryLookup(Source{Name: "smith", Link: "a"})

	first, _ := lookup.ByName(ctx, "smith")
	first.Link = "mutated"

	second, _ := lookup.ByName(ctx, "smith")
	if second.Link != "a" {
		t.Fatalf("expected stored source untouched, got %q", second.Link)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "source", Key: "x"}
	if err.Error() != `source "x" not found` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if (&NotFoundError{Resource: "source"}).Error() != "source not found" {
		t.Fatalf("unexpected keyless message")
	}
}
