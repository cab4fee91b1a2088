package document

import (
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/sources"
)

// BlockKind identifies the variant carried by a Block.
type BlockKind string

const (
	BlockText     BlockKind = "text"
	BlockHeading  BlockKind = "heading"
	BlockCitation BlockKind = "citation"
	BlockEmbed    BlockKind = "embed"
	BlockLink     BlockKind = "link"
	BlockTag      BlockKind = "tag"
	BlockBullets  BlockKind = "bullets"
	BlockList     BlockKind = "list"
)

// Block is one presentation-neutral unit of a rendered document.
type Block struct {
	Kind BlockKind `json:"kind"`

	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"`
	Label string `json:"label,omitempty"`

	Name   string `json:"name,omitempty"`
	Number int    `json:"number,omitempty"`
	Href   string `json:"href,omitempty"`

	URL       string `json:"url,omitempty"`
	PlayerURL string `json:"player_url,omitempty"`

	Path  string `json:"path,omitempty"`
	Title string `json:"title,omitempty"`

	Items []string          `json:"items,omitempty"`
	List  *markup.ListBlock `json:"list,omitempty"`
}

// SourceEntry is one row of the numbered source list. Source is nil when
// the registry has no entry for the citation.
type SourceEntry struct {
	Number int             `json:"number"`
	Name   string          `json:"name"`
	Source *sources.Source `json:"source,omitempty"`
	Href   string          `json:"href"`
}

// Document is the result of a rendering pass.
type Document struct {
	Blocks  []Block       `json:"blocks"`
	Sources []SourceEntry `json:"sources"`
}

// Outline returns the heading blocks in order.
func (d *Document) Outline() []Block {
	if d == nil {
		return nil
	}
	var headings []Block
	for _, block := range d.Blocks {
		if block.Kind == BlockHeading {
			headings = append(headings, block)
		}
	}
	return headings
}
