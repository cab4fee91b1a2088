// Package embed converts embed directive URLs into player URLs suitable for
// an iframe.
package embed

import (
	"net/url"
	"strings"
)

const (
	youTubePlayerBase = "https://www.youtube.com/embed/"
	vimeoPlayerBase   = "https://player.vimeo.com/video/"
)

// PlayerURL returns the player URL for raw. YouTube and Vimeo links are
// rewritten to their embed players; any other absolute URL is returned
// unchanged. Input that is not an absolute URL yields false.
func PlayerURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case strings.Contains(host, "youtu.be"):
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return youTubePlayerBase + id, true
		}
	case strings.Contains(host, "youtube.com"):
		if id := youTubeID(parsed); id != "" {
			return youTubePlayerBase + id, true
		}
	case strings.Contains(host, "vimeo.com"):
		if id := lastPathSegment(parsed.Path); id != "" {
			return vimeoPlayerBase + id, true
		}
	}
	return trimmed, true
}

func youTubeID(u *url.URL) string {
	switch {
	case u.Path == "/watch":
		return u.Query().Get("v")
	case strings.HasPrefix(u.Path, "/embed/"):
		return strings.Trim(strings.TrimPrefix(u.Path, "/embed/"), "/")
	}
	return ""
}

func lastPathSegment(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
