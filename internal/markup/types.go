package markup

import "strings"

// SegmentKind identifies the variant carried by a Segment.
type SegmentKind string

const (
	SegmentText             SegmentKind = "text"
	SegmentCitation         SegmentKind = "citation"
	SegmentEmbed            SegmentKind = "embed"
	SegmentHeading          SegmentKind = "heading"
	SegmentBullet           SegmentKind = "bullet"
	SegmentLink             SegmentKind = "link"
	SegmentTag              SegmentKind = "tag"
	SegmentList             SegmentKind = "list"
	SegmentNumberingControl SegmentKind = "numbering-control"
)

// NumberingStyle selects how headings are labelled while rendering.
type NumberingStyle string

const (
	StyleNumeric    NumberingStyle = "numeric"
	StyleAlphabetic NumberingStyle = "alphabetic"
	StyleNone       NumberingStyle = "none"
)

// ParseStyle resolves a configured or user supplied style name. The
// literal "false" is accepted as an alias of none.
func ParseStyle(value string) (NumberingStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(StyleNumeric):
		return StyleNumeric, true
	case string(StyleAlphabetic):
		return StyleAlphabetic, true
	case string(StyleNone), "false":
		return StyleNone, true
	default:
		return "", false
	}
}

// Segment is one classified unit of parsed content. Only the fields that
// belong to Kind are populated. Start/End delimit the exclusive span the
// segment owns in the normalized text and Raw holds that span verbatim.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Start int         `json:"start"`
	End   int         `json:"end"`
	Raw   string      `json:"raw"`

	// Text carries the cleaned run for text segments, the heading text,
	// the standalone bullet text, or the visible text of a link.
	Text  string         `json:"text,omitempty"`
	Name  string         `json:"name,omitempty"`
	URL   string         `json:"url,omitempty"`
	Level int            `json:"level,omitempty"`
	Path  string         `json:"path,omitempty"`
	List  *ListBlock     `json:"list,omitempty"`
	Style NumberingStyle `json:"style,omitempty"`
}

// ListKind identifies the flavour of a begin/end list block.
type ListKind string

const (
	ListBullet  ListKind = "bullet"
	ListNumeric ListKind = "numeric"
	ListArrow   ListKind = "arrow"
	ListCustom  ListKind = "custom"
)

// ListBlock is a parsed begin/end structure. Start/End are relative to the
// text the block was discovered in: the normalized input for top-level
// lists, the parent item's content for nested ones.
type ListBlock struct {
	Kind   ListKind   `json:"kind"`
	Marker string     `json:"marker,omitempty"`
	Items  []ListItem `json:"items"`
	Start  int        `json:"start"`
	End    int        `json:"end"`
}

// ListItem holds the trimmed raw content of an item, including the markup
// of any nested lists, which are also exposed parsed in NestedLists.
type ListItem struct {
	Content     string      `json:"content"`
	NestedLists []ListBlock `json:"nested_lists,omitempty"`
}

// Text returns the item content with nested list markup removed.
func (i ListItem) Text() string {
	if len(i.NestedLists) == 0 {
		return i.Content
	}
	var builder strings.Builder
	cursor := 0
	for _, nested := range i.NestedLists {
		if nested.Start < cursor || nested.End > len(i.Content) {
			continue
		}
		builder.WriteString(i.Content[cursor:nested.Start])
		cursor = nested.End
	}
	builder.WriteString(i.Content[cursor:])
	return strings.TrimSpace(builder.String())
}

// ParsedContent is the aggregate result of a parse. It is built fresh for
// every call and never mutated afterwards.
type ParsedContent struct {
	Segments []Segment `json:"segments"`
	// Citations lists each distinct citation name once, in first-appearance order.
	Citations []string `json:"citations"`
	// Embeds lists every embed URL in document order; repeats are kept.
	Embeds []string `json:"embeds"`
}

// Reconstruct concatenates the raw spans of every segment.
func (p *ParsedContent) Reconstruct() string {
	if p == nil {
		return ""
	}
	var builder strings.Builder
	for _, segment := range p.Segments {
		builder.WriteString(segment.Raw)
	}
	return builder.String()
}
