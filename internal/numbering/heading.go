package numbering

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-notes/internal/markup"
)

const maxLevel = 3

// HeadingNumberer hands out hierarchical heading labels while a renderer
// walks segments in order. Create one per rendering pass; it is not safe
// for concurrent use.
type HeadingNumberer struct {
	style    markup.NumberingStyle
	counters [maxLevel]int
}

// NewHeadingNumberer returns a numberer starting with style. An empty or
// unknown style falls back to numeric.
func NewHeadingNumberer(style markup.NumberingStyle) *HeadingNumberer {
	n := &HeadingNumberer{}
	n.SetStyle(style)
	return n
}

// Style reports the active style.
func (n *HeadingNumberer) Style() markup.NumberingStyle {
	return n.style
}

// SetStyle switches the style for subsequent headings. Counters are left
// untouched so a section switched back to numeric continues its sequence.
func (n *HeadingNumberer) SetStyle(style markup.NumberingStyle) {
	switch style {
	case markup.StyleNumeric, markup.StyleAlphabetic, markup.StyleNone:
		n.style = style
	default:
		n.style = markup.StyleNumeric
	}
}

// Number advances the counter for level and returns its label. With style
// none it returns false and no counter moves. Levels outside 1..3 are
// clamped.
func (n *HeadingNumberer) Number(level int) (string, bool) {
	if n.style == markup.StyleNone {
		return "", false
	}
	if level < 1 {
		level = 1
	}
	if level > maxLevel {
		level = maxLevel
	}

	n.counters[level-1]++
	for deeper := level; deeper < maxLevel; deeper++ {
		n.counters[deeper] = 0
	}

	parts := make([]string, 0, level)
	for index := 0; index < level; index++ {
		count := n.counters[index]
		if count == 0 {
			continue
		}
		parts = append(parts, n.format(index, count))
	}
	return strings.Join(parts, "."), true
}

// Reset zeroes every counter.
func (n *HeadingNumberer) Reset() {
	n.counters = [maxLevel]int{}
}

func (n *HeadingNumberer) format(index, count int) string {
	if n.style != markup.StyleAlphabetic {
		return strconv.Itoa(count)
	}
	base := 'a'
	if index == 0 {
		base = 'A'
	}
	return string(base + rune((count-1)%26))
}
