package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity type so sources and nodes never collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// NodeUUID is the ID of the node stored at path.
func NodeUUID(path string) uuid.UUID {
	return UUID("go-notes:node:" + strings.TrimSpace(path))
}

// SourceUUID is the ID of the registry source with the given name.
func SourceUUID(name string) uuid.UUID {
	return UUID("go-notes:source:" + strings.TrimSpace(name))
}
