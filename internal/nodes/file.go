package nodes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-notes/internal/identity"
)

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Slug  string `yaml:"slug" toml:"slug" json:"slug"`
	Path  string `yaml:"path" toml:"path" json:"path"`
}

// LoadFile reads filename and builds a leaf node from it. See ParseFile.
func LoadFile(filename string) (*Node, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read node file: %w", err)
	}
	return ParseFile(filename, source)
}

// ParseFile builds a leaf node from source, which may start with a front
// matter block providing title, slug and path. Missing values are derived
// from the file name: the title from the base name, the slug from the
// title, the path from the slug. The ID is stable for a given path.
func ParseFile(filename string, source []byte) (*Node, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		base := filepath.Base(filename)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	slugValue := strings.TrimSpace(meta.Slug)
	if slugValue == "" {
		slugValue = NormalizeTag(strings.ReplaceAll(title, "/", " "))
	}

	path := strings.TrimSpace(meta.Path)
	if path == "" {
		path = slugValue
	}
	path = CleanPath(path)

	return &Node{
		ID:      identity.NodeUUID(path),
		Kind:    KindLeaf,
		Title:   title,
		Slug:    slugValue,
		Path:    path,
		Content: string(body),
	}, nil
}
