package nodes

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// CleanPath returns path with a single leading slash and no trailing one.
func CleanPath(path string) string {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed
}

// NormalizeTag slugifies every segment of a tag path and joins them with
// "/". Segments that do not slugify are lowercased as is; empty segments
// are dropped.
func NormalizeTag(tagPath string) string {
	parts := strings.Split(strings.TrimSpace(tagPath), "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, normalizeSegment(part))
	}
	return strings.Join(out, "/")
}

func normalizeSegment(segment string) string {
	normalized, err := slug.Normalize(segment)
	if err != nil || normalized == "" {
		return strings.ToLower(segment)
	}
	return strings.ToLower(normalized)
}

// MatchesTag reports whether nodePath is addressed by the normalized tag:
// the paths are equal, or nodePath ends with "/"+tag.
func MatchesTag(nodePath, normalizedTag string) bool {
	if normalizedTag == "" {
		return false
	}
	candidate := strings.ToLower(strings.TrimRight(nodePath, "/"))
	return candidate == normalizedTag ||
		candidate == "/"+normalizedTag ||
		strings.HasSuffix(candidate, "/"+normalizedTag)
}
