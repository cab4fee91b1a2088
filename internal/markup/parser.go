package markup

// Parser turns leaf-node markup into ParsedContent. It holds no state, so
// a single instance can be shared across goroutines.
type Parser struct{}

// NewParser creates a parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the segmentation of text. See the package level Parse.
func (p *Parser) Parse(text string) *ParsedContent {
	return Parse(text)
}

// Parse normalizes text, claims list spans, matches the remaining
// directives and merges everything into an ordered segmentation. It never
// fails: malformed markup degrades to text or to a best-effort list.
func Parse(text string) *ParsedContent {
	normalized := Normalize(text)

	lists := findLists(normalized)
	directives := matchDirectives(normalized)
	segments := mergeSegments(normalized, lists, directives)

	return &ParsedContent{
		Segments:  segments,
		Citations: collectCitations(segments),
		Embeds:    collectEmbeds(segments),
	}
}

func collectCitations(segments []Segment) []string {
	citations := []string{}
	seen := map[string]struct{}{}
	for _, segment := range segments {
		if segment.Kind != SegmentCitation {
			continue
		}
		if _, ok := seen[segment.Name]; ok {
			continue
		}
		seen[segment.Name] = struct{}{}
		citations = append(citations, segment.Name)
	}
	return citations
}

func collectEmbeds(segments []Segment) []string {
	embeds := []string{}
	for _, segment := range segments {
		if segment.Kind == SegmentEmbed {
			embeds = append(embeds, segment.URL)
		}
	}
	return embeds
}
