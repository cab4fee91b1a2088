package markup

import (
	"regexp"
	"sort"
)

var (
	residualDirectivePattern = regexp.MustCompile(`\\(?:cite|embed|heading|subheading|subsubheading|item|link|tag)\{[^}]+\}`)
	residualControlPattern   = regexp.MustCompile(`\{\w+\s*=\s*[^}]+\}`)
)

// listOrder sorts list blocks ahead of directives sharing a start offset.
const listOrder = -1

// mergeSegments combines top-level list blocks and directive matches into a
// single ascending, non-overlapping segmentation of text. Directives that
// start inside a list span are owned by that list and dropped. When two
// surviving matches overlap, the one that starts first wins.
func mergeSegments(text string, lists []ListBlock, directives []match) []Segment {
	items := make([]match, 0, len(lists)+len(directives))
	for i := range lists {
		block := lists[i]
		items = append(items, match{
			start: block.Start,
			end:   block.End,
			order: listOrder,
			segment: Segment{
				Kind:  SegmentList,
				Start: block.Start,
				End:   block.End,
				Raw:   text[block.Start:block.End],
				List:  &block,
			},
		})
	}
	for _, directive := range directives {
		if insideAny(directive.start, lists) {
			continue
		}
		items = append(items, directive)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].start != items[j].start {
			return items[i].start < items[j].start
		}
		if items[i].end != items[j].end {
			return items[i].end > items[j].end
		}
		return items[i].order < items[j].order
	})

	segments := make([]Segment, 0, 2*len(items)+1)
	cursor := 0
	for _, item := range items {
		if item.start < cursor {
			continue
		}
		if item.start > cursor {
			segments = append(segments, textSegment(text, cursor, item.start))
		}
		segments = append(segments, item.segment)
		cursor = item.end
	}
	if cursor < len(text) {
		segments = append(segments, textSegment(text, cursor, len(text)))
	}
	if len(segments) == 0 {
		segments = append(segments, textSegment(text, 0, len(text)))
	}

	return segments
}

func insideAny(offset int, lists []ListBlock) bool {
	for _, block := range lists {
		if block.Start <= offset && offset < block.End {
			return true
		}
	}
	return false
}

// textSegment builds a text run for text[start:end]. The visible text has
// any leftover directive syntax stripped; Raw keeps the span untouched so
// the segmentation still reconstructs the input.
func textSegment(text string, start, end int) Segment {
	raw := text[start:end]
	return Segment{
		Kind:  SegmentText,
		Start: start,
		End:   end,
		Raw:   raw,
		Text:  stripResidualDirectives(raw),
	}
}

func stripResidualDirectives(raw string) string {
	cleaned := residualDirectivePattern.ReplaceAllString(raw, "")
	return residualControlPattern.ReplaceAllString(cleaned, "")
}
