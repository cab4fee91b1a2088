package markup

import "strings"

// Normalize collapses every doubled backslash into a single one. Stored
// content occasionally carries escaped backslashes; all offsets produced by
// the parser refer to the normalized string.
func Normalize(text string) string {
	if !strings.Contains(text, `\\`) {
		return text
	}
	return strings.ReplaceAll(text, `\\`, `\`)
}
