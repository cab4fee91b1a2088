package markup

import (
	"regexp"
	"strings"
)

var (
	listOpenerPattern = regexp.MustCompile(`\\begin\{itemize\}|\\begin\{enumerate\}|\\begin\{list\}\[([^\]]+)\]`)

	// listTokenPattern finds the next opener (group 1), closer (group 2) or
	// item marker (group 3 holds the item text) inside a list body.
	listTokenPattern = regexp.MustCompile(`(\\begin\{itemize\}|\\begin\{enumerate\}|\\begin\{list\}\[[^\]]+\])|(\\end\{(?:itemize|enumerate|list)\})|\\item\{([^}]+)\}`)
)

var arrowMarkers = map[string]struct{}{
	"arrow": {},
	"→":     {},
	"➔":     {},
	"➜":     {},
}

// findLists scans text left to right and parses every list opener that is
// not contained in a previously discovered list.
func findLists(text string) []ListBlock {
	var blocks []ListBlock
	cursor := 0
	for cursor < len(text) {
		loc := listOpenerPattern.FindStringIndex(text[cursor:])
		if loc == nil {
			break
		}
		start := cursor + loc[0]
		block := parseListBlock(text, start)
		blocks = append(blocks, block)
		if block.End > start {
			cursor = block.End
		} else {
			cursor = start + 1
		}
	}
	return blocks
}

// parseListBlock parses the list whose opener starts exactly at start.
// Nesting is tracked with a depth counter; only items at depth one belong
// to this list, deeper ones stay inside the current item's content and are
// recovered by the nested scan. An unterminated list runs to the end of the
// text.
func parseListBlock(text string, start int) ListBlock {
	opener := listOpenerPattern.FindStringSubmatchIndex(text[start:])
	block := ListBlock{Start: start, End: len(text)}
	if opener == nil || opener[0] != 0 {
		block.End = start
		return block
	}
	block.Kind, block.Marker = listKind(text[start:], opener)

	var (
		depth    = 1
		cursor   = start + opener[1]
		contents []string
		pending  bool
		lead     string
		tail     int
		closed   bool
	)

	finish := func(until int) {
		if !pending {
			return
		}
		contents = append(contents, strings.TrimSpace(lead+text[tail:until]))
		pending = false
	}

	for cursor < len(text) && !closed {
		tok := listTokenPattern.FindStringSubmatchIndex(text[cursor:])
		if tok == nil {
			break
		}
		tokStart, tokEnd := cursor+tok[0], cursor+tok[1]

		switch {
		case tok[2] >= 0:
			depth++
		case tok[4] >= 0:
			depth--
			if depth == 0 {
				finish(tokStart)
				block.End = tokEnd
				closed = true
			}
		default:
			if depth == 1 {
				finish(tokStart)
				lead = text[cursor+tok[6] : cursor+tok[7]]
				tail = tokEnd
				pending = true
			}
		}
		cursor = tokEnd
	}

	if !closed {
		finish(len(text))
		block.End = len(text)
	}

	block.Items = make([]ListItem, 0, len(contents))
	for _, content := range contents {
		item := ListItem{Content: content}
		if nested := findLists(content); len(nested) > 0 {
			item.NestedLists = nested
		}
		block.Items = append(block.Items, item)
	}
	return block
}

func listKind(text string, opener []int) (ListKind, string) {
	raw := text[opener[0]:opener[1]]
	switch {
	case strings.HasPrefix(raw, `\begin{itemize}`):
		return ListBullet, ""
	case strings.HasPrefix(raw, `\begin{enumerate}`):
		return ListNumeric, ""
	}
	marker := strings.TrimSpace(group(text, opener, 1))
	if _, ok := arrowMarkers[strings.ToLower(marker)]; ok {
		return ListArrow, ""
	}
	return ListCustom, marker
}
