package buffer

// Line is a cursor-addressed buffer for one editable input line. It holds
// the prompt shown before the text, the text itself as runes, and the
// cursor as a rune index into the text. A cursor equal to len(text) is
// valid: it means one position past the last rune, where appends land.
//
// A Line belongs to exactly one line-editing session at a time and is not
// safe for concurrent use.
type Line struct {
	prompt string
	text   []rune
	cursor int
}

// Statically check that *Line implements the Buffer interface.
var _ Buffer = (*Line)(nil)

// NewLine creates an empty Line with the given prompt. Any init callbacks
// run on the new buffer before it is returned, allowing fluent setup.
func NewLine(prompt string, init ...func(*Line)) *Line {
	return NewLineWithText(prompt, "", init...)
}

// NewLineWithText creates a Line holding text, with the cursor placed one
// past the last rune. Both strings are copied; the buffer never aliases
// caller-owned storage.
func NewLineWithText(prompt, text string, init ...func(*Line)) *Line {
	l := &Line{
		prompt: prompt,
		text:   []rune(text),
	}
	l.cursor = len(l.text)
	for _, fn := range init {
		fn(l)
	}
	return l
}

// Prompt returns the prompt string.
func (l *Line) Prompt() string {
	return l.prompt
}

// Text returns the current text content as a string.
func (l *Line) Text() string {
	return string(l.text)
}

// Cursor returns the current cursor position.
func (l *Line) Cursor() int {
	return l.cursor
}

// AtStart reports whether the cursor is at position 0.
func (l *Line) AtStart() bool {
	return l.cursor == 0
}

// AtEnd reports whether the cursor is one past the last rune.
func (l *Line) AtEnd() bool {
	return l.cursor == len(l.text)
}

// IsEmpty reports whether the buffer holds no text.
func (l *Line) IsEmpty() bool {
	return len(l.text) == 0
}

// MoveLeft moves the cursor n positions left, stopping at 0.
func (l *Line) MoveLeft(n int) {
	l.cursor = clamp(l.cursor-n, 0, len(l.text))
}

// MoveRight moves the cursor n positions right, stopping at the end.
func (l *Line) MoveRight(n int) {
	l.cursor = clamp(l.cursor+n, 0, len(l.text))
}

// MoveToStart places the cursor at position 0.
func (l *Line) MoveToStart() {
	l.cursor = 0
}

// MoveToEnd places the cursor one past the last rune.
func (l *Line) MoveToEnd() {
	l.cursor = len(l.text)
}

// WriteAt writes s at the given rune index. The index need not be in
// bounds; the four cases have genuinely different semantics:
//
//  1. index <= 0: prepend before the whole text.
//  2. index == len(text)-1: append after the whole text.
//  3. index beyond the last rune: the gap between the current end and
//     index is padded with spaces, then s is appended. Writing at index 5
//     into a 3-rune buffer yields 2 padding spaces before s.
//  4. otherwise: split the text at index and insert s between the halves.
//
// In every case the cursor ends immediately after the written runes,
// padding included.
func (l *Line) WriteAt(index int, s string) {
	chars := []rune(s)
	n := len(l.text)

	switch {
	case index <= 0:
		index = 0
		text := make([]rune, 0, n+len(chars))
		text = append(text, chars...)
		text = append(text, l.text...)
		l.text = text

	case index == n-1:
		l.text = append(l.text, chars...)

	case index > n-1:
		pad := index - n
		for i := 0; i < pad; i++ {
			l.text = append(l.text, ' ')
		}
		l.text = append(l.text, chars...)

	default:
		text := make([]rune, 0, n+len(chars))
		text = append(text, l.text[:index]...)
		text = append(text, chars...)
		text = append(text, l.text[index:]...)
		l.text = text
	}

	l.cursor = index + len(chars)
}

// ReplaceRange splices s over the half-open rune range [start, end) and
// advances the cursor by the number of runes written. The range is clamped
// into the current text, so the operation is total like everything else.
func (l *Line) ReplaceRange(start, end int, s string) {
	chars := []rune(s)
	n := len(l.text)
	start = clamp(start, 0, n)
	end = clamp(end, start, n)

	text := make([]rune, 0, n-(end-start)+len(chars))
	text = append(text, l.text[:start]...)
	text = append(text, chars...)
	text = append(text, l.text[end:]...)
	l.text = text

	l.cursor = clamp(l.cursor+len(chars), 0, len(l.text))
}

// RuneAt returns the rune at index i. The caller must ensure i is in
// range: an out-of-range index panics with the runtime's slice bounds
// error, exactly as indexing the underlying rune slice would.
func (l *Line) RuneAt(i int) rune {
	return l.text[i]
}

// Replace discards the current text, substitutes s and places the cursor
// one past the new content, regardless of where it was before.
func (l *Line) Replace(s string) {
	l.text = []rune(s)
	l.cursor = len(l.text)
}

// Insert writes s at the cursor. This is the common typing path.
func (l *Line) Insert(s string) {
	l.WriteAt(l.cursor, s)
}

// Append adds a single rune at the end of the text and advances the cursor
// by one. Unlike Insert it never pads or splits; the caller is responsible
// for the cursor already being logically at the end.
func (l *Line) Append(r rune) {
	l.text = append(l.text, r)
	l.cursor++
}

// Delete removes the rune under the cursor, leaving the cursor in place.
// No-op when the cursor is at or past the end.
func (l *Line) Delete() {
	if l.cursor >= len(l.text) {
		return
	}
	l.text = append(l.text[:l.cursor], l.text[l.cursor+1:]...)
}

// Backspace moves the cursor left by one and removes the rune there.
// No-op at the start of the line.
func (l *Line) Backspace() {
	if l.cursor == 0 {
		return
	}
	l.cursor--
	l.text = append(l.text[:l.cursor], l.text[l.cursor+1:]...)
}

// String returns prompt and text concatenated with no separator, the full
// visible line as the reader redraws it.
func (l *Line) String() string {
	return l.prompt + string(l.text)
}

// PromptWidth returns the rune count of the prompt after stripping
// terminal escape sequences, the prompt's true on-screen column count for
// prompts of single-cell runes.
func (l *Line) PromptWidth() int {
	return len([]rune(stripEscapes(l.prompt)))
}

// Width returns PromptWidth plus the rune count of the text.
func (l *Line) Width() int {
	return l.PromptWidth() + len(l.text)
}

// Len is an alias for Width.
func (l *Line) Len() int {
	return l.Width()
}

// clamp returns v limited to the range [low, high].
func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
