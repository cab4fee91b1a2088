package markup

import (
	"regexp"
	"strings"
)

// legacyEmbedProximity is the distance, in bytes, under which a bare
// embed{url} match is treated as the same token as a backslashed embed.
const legacyEmbedProximity = 10

var (
	citePattern          = regexp.MustCompile(`\\cite\{([^}]+)\}`)
	embedPattern         = regexp.MustCompile(`\\embed\{([^}]+)\}`)
	bareEmbedPattern     = regexp.MustCompile(`embed\{([^}]+)\}`)
	headingPattern       = regexp.MustCompile(`\\heading\{([^}]+)\}`)
	subheadingPattern    = regexp.MustCompile(`\\subheading\{([^}]+)\}`)
	subsubheadingPattern = regexp.MustCompile(`\\subsubheading\{([^}]+)\}`)
	bulletPattern        = regexp.MustCompile(`\\item\{([^}]+)\}`)
	linkPattern          = regexp.MustCompile(`\\link\{([^,]+),\s*([^}]+)\}`)
	tagPattern           = regexp.MustCompile(`\\tag\{([^}]+)\}`)
	numberingPattern     = regexp.MustCompile(`\{(\w+)\s*=\s*([^}]+)\}`)
)

// match is a recognised directive or list block waiting to be merged.
// order breaks ties between matches sharing a start offset.
type match struct {
	start   int
	end     int
	order   int
	segment Segment
}

type directiveMatcher struct {
	pattern *regexp.Regexp
	build   func(text string, loc []int) (Segment, bool)
}

// directiveMatchers run independently of each other over the whole text.
// The bare embed form is handled separately because it depends on the
// backslashed embed results.
var directiveMatchers = []directiveMatcher{
	{pattern: citePattern, build: func(text string, loc []int) (Segment, bool) {
		return Segment{Kind: SegmentCitation, Name: group(text, loc, 1)}, true
	}},
	{pattern: embedPattern, build: func(text string, loc []int) (Segment, bool) {
		return Segment{Kind: SegmentEmbed, URL: group(text, loc, 1)}, true
	}},
	{pattern: headingPattern, build: headingBuilder(1)},
	{pattern: subheadingPattern, build: headingBuilder(2)},
	{pattern: subsubheadingPattern, build: headingBuilder(3)},
	{pattern: bulletPattern, build: func(text string, loc []int) (Segment, bool) {
		return Segment{Kind: SegmentBullet, Text: group(text, loc, 1)}, true
	}},
	{pattern: linkPattern, build: func(text string, loc []int) (Segment, bool) {
		return Segment{
			Kind: SegmentLink,
			Text: strings.TrimSpace(group(text, loc, 1)),
			URL:  strings.TrimSpace(group(text, loc, 2)),
		}, true
	}},
	{pattern: tagPattern, build: func(text string, loc []int) (Segment, bool) {
		return Segment{Kind: SegmentTag, Path: strings.TrimSpace(group(text, loc, 1))}, true
	}},
	{pattern: numberingPattern, build: func(text string, loc []int) (Segment, bool) {
		style, ok := numberingStyle(group(text, loc, 1), group(text, loc, 2))
		if !ok {
			return Segment{}, false
		}
		return Segment{Kind: SegmentNumberingControl, Style: style}, true
	}},
}

func headingBuilder(level int) func(string, []int) (Segment, bool) {
	return func(text string, loc []int) (Segment, bool) {
		return Segment{Kind: SegmentHeading, Level: level, Text: group(text, loc, 1)}, true
	}
}

// matchDirectives collects every directive occurrence in text with its
// absolute span. Nothing is applied to the text and list ownership is not
// considered here.
func matchDirectives(text string) []match {
	var (
		matches      []match
		embedOffsets []int
	)

	for order, matcher := range directiveMatchers {
		for _, loc := range matcher.pattern.FindAllStringSubmatchIndex(text, -1) {
			segment, ok := matcher.build(text, loc)
			if !ok {
				continue
			}
			matches = append(matches, newMatch(text, loc, order, segment))
			if segment.Kind == SegmentEmbed {
				embedOffsets = append(embedOffsets, loc[0])
			}
		}
	}

	bareOrder := len(directiveMatchers)
	for _, loc := range bareEmbedPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] == '\\' {
			continue
		}
		if nearAny(loc[0], embedOffsets, legacyEmbedProximity) {
			continue
		}
		segment := Segment{Kind: SegmentEmbed, URL: group(text, loc, 1)}
		matches = append(matches, newMatch(text, loc, bareOrder, segment))
	}

	return matches
}

func newMatch(text string, loc []int, order int, segment Segment) match {
	segment.Start = loc[0]
	segment.End = loc[1]
	segment.Raw = text[loc[0]:loc[1]]
	return match{
		start:   loc[0],
		end:     loc[1],
		order:   order,
		segment: segment,
	}
}

// numberingStyle maps a {key=value} directive onto a style. Keys and values
// outside the vocabulary yield false.
func numberingStyle(rawKey, rawValue string) (NumberingStyle, bool) {
	key := strings.ToLower(strings.TrimSpace(rawKey))
	value := strings.ToLower(strings.TrimSpace(rawValue))
	value = strings.NewReplacer(`"`, "", `'`, "").Replace(value)

	switch key {
	case "numeric":
		if value == "false" {
			return StyleNone, true
		}
		return StyleNumeric, true
	case "style":
		switch value {
		case "numeric":
			return StyleNumeric, true
		case "alphabetic":
			return StyleAlphabetic, true
		case "none", "false":
			return StyleNone, true
		}
	}
	return "", false
}

func group(text string, loc []int, index int) string {
	if 2*index+1 >= len(loc) || loc[2*index] < 0 {
		return ""
	}
	return text[loc[2*index]:loc[2*index+1]]
}

func nearAny(offset int, offsets []int, distance int) bool {
	for _, other := range offsets {
		diff := offset - other
		if diff < 0 {
			diff = -diff
		}
		if diff < distance {
			return true
		}
	}
	return false
}
