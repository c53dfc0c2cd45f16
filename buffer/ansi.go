package buffer

import "regexp"

// escapePattern recognizes one terminal escape sequence: an optional '[',
// the ESC byte, an optional '[', a run of digits, ';' or '?', a single
// alphanumeric terminator, and an optional trailing ']'. This is a
// best-effort heuristic, not a full escape-sequence grammar; the rest of
// the reader computes widths against this exact shape.
var escapePattern = regexp.MustCompile(`\[?\x1b\[?[;?0-9]*[0-9A-Za-z]\]?`)

// stripEscapes returns s with every recognized escape sequence removed, so
// that width calculations count only visible runes.
func stripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}
