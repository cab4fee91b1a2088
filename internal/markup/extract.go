package markup

import (
	"regexp"
	"sort"
	"strings"
)

// headingPatterns is indexed by heading level minus one.
var headingPatterns = []*regexp.Regexp{headingPattern, subheadingPattern, subsubheadingPattern}

// HeadingRef is a heading found by ExtractHeadings.
type HeadingRef struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// The Extract helpers are flat scans used by indexing consumers. Unlike
// Parse they do not honour list ownership: a heading inside a list item is
// still reported.

// ExtractCitations returns the distinct citation names in text in order of
// first appearance.
func ExtractCitations(text string) []string {
	normalized := Normalize(text)
	citations := []string{}
	seen := map[string]struct{}{}
	for _, loc := range citePattern.FindAllStringSubmatchIndex(normalized, -1) {
		name := group(normalized, loc, 1)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		citations = append(citations, name)
	}
	return citations
}

// ExtractEmbeds returns every backslashed embed URL in text, repeats included.
func ExtractEmbeds(text string) []string {
	normalized := Normalize(text)
	embeds := []string{}
	for _, loc := range embedPattern.FindAllStringSubmatchIndex(normalized, -1) {
		embeds = append(embeds, group(normalized, loc, 1))
	}
	return embeds
}

// ExtractHeadings returns all headings of every level in document order.
func ExtractHeadings(text string) []HeadingRef {
	normalized := Normalize(text)

	type located struct {
		offset int
		ref    HeadingRef
	}
	var found []located
	for index, pattern := range headingPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(normalized, -1) {
			found = append(found, located{
				offset: loc[0],
				ref:    HeadingRef{Level: index + 1, Text: group(normalized, loc, 1)},
			})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})

	headings := make([]HeadingRef, 0, len(found))
	for _, item := range found {
		headings = append(headings, item.ref)
	}
	return headings
}

// ExtractTags returns the trimmed path of every \tag{} directive in order.
func ExtractTags(text string) []string {
	normalized := Normalize(text)
	tags := []string{}
	for _, loc := range tagPattern.FindAllStringSubmatchIndex(normalized, -1) {
		if path := strings.TrimSpace(group(normalized, loc, 1)); path != "" {
			tags = append(tags, path)
		}
	}
	return tags
}
