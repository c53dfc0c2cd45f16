package buffer

// Buffer is the editing surface for a single input line. The surrounding
// reader calls these operations one decoded key event at a time; the buffer
// owns the text, the cursor and the width arithmetic, nothing else.
type Buffer interface {
	// AtStart reports whether the cursor sits at position 0.
	AtStart() bool

	// AtEnd reports whether the cursor sits one past the last rune.
	AtEnd() bool

	// IsEmpty reports whether the buffer holds no text.
	IsEmpty() bool

	// MoveLeft moves the cursor n positions left, stopping at 0.
	MoveLeft(n int)

	// MoveRight moves the cursor n positions right, stopping at the end
	// of the text.
	MoveRight(n int)

	// MoveToStart places the cursor at position 0.
	MoveToStart()

	// MoveToEnd places the cursor one past the last rune.
	MoveToEnd()

	// WriteAt writes s at the given rune index, which need not be in
	// bounds: writing past the end pads the gap with spaces, writing at
	// or before 0 prepends. The cursor ends immediately after the
	// written runes.
	WriteAt(index int, s string)

	// ReplaceRange splices s over the half-open rune range [start, end)
	// and advances the cursor by the number of runes written.
	ReplaceRange(start, end int, s string)

	// RuneAt returns the rune at index i.
	// The caller must ensure i is in range; an out-of-range index panics
	// with the usual slice bounds error.
	RuneAt(i int) rune

	// Replace discards the current text, substitutes s and moves the
	// cursor past the new content. Used when a history entry or a
	// completion result takes over the line.
	Replace(s string)

	// Insert writes s at the cursor. This is the common typing path.
	Insert(s string)

	// Append adds a single rune at the end of the text and advances the
	// cursor by one. It assumes the cursor is already at the end.
	Append(r rune)

	// Delete removes the rune under the cursor, leaving the cursor in
	// place. No-op when the cursor is at the end.
	Delete()

	// Backspace removes the rune before the cursor. No-op at the start
	// of the line.
	Backspace()

	// String returns prompt and text concatenated, the full visible line.
	String() string

	// PromptWidth returns the rune count of the prompt with terminal
	// escape sequences stripped out.
	PromptWidth() int

	// Width returns PromptWidth plus the rune count of the text.
	Width() int
}
