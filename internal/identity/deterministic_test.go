package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsStable(t *testing.T) {
	first := NodeUUID("/philosophy/ethics")
	second := NodeUUID(" /philosophy/ethics ")
	if first == uuid.Nil || first != second {
		t.Fatalf("expected stable non-nil id, got %s and %s", first, second)
	}
}

func TestUUIDSeparatesEntities(t *testing.T) {
	if NodeUUID("ethics") == SourceUUID("ethics") {
		t.Fatal("expected node and source ids to differ for the same key")
	}
	if NodeUUID("/a") == NodeUUID("/b") {
		t.Fatal("expected distinct paths to produce distinct ids")
	}
}

func TestUUIDBlankKey(t *testing.T) {
	if got := UUID("  "); got != uuid.Nil {
		t.Fatalf("expected nil uuid, got %s", got)
	}
}
