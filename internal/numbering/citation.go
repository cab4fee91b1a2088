package numbering

// NumberCitations maps each citation name to its 1-based position in
// citations. The input is expected to be the unique, first-appearance list
// from ParsedContent; should a name repeat, its first position is kept.
func NumberCitations(citations []string) map[string]int {
	numbers := make(map[string]int, len(citations))
	for index, name := range citations {
		if _, ok := numbers[name]; ok {
			continue
		}
		numbers[name] = index + 1
	}
	return numbers
}
