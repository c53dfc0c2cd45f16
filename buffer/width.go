package buffer

import "github.com/mattn/go-runewidth"

// ScreenWidth returns the number of terminal columns the rendered line
// occupies, counting East Asian wide runes as two cells and stripping
// escape sequences from the prompt. Use Width when the caller addresses
// rune positions rather than screen cells.
func (l *Line) ScreenWidth() int {
	return runewidth.StringWidth(stripEscapes(l.prompt)) + runewidth.StringWidth(string(l.text))
}

// CursorColumn returns the column offset of the cursor within the rendered
// line: the stripped prompt width plus the cursor position. The reader
// uses this to decide how far to move the real terminal cursor.
func (l *Line) CursorColumn() int {
	return l.PromptWidth() + l.cursor
}
