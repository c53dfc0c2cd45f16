// Package terminal answers the geometry questions an input reader asks
// when repositioning the cursor: whether stdout is a terminal and how many
// columns and rows it has.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the column and row count of the terminal on stdout. On
// Windows it falls back to querying the console directly, which still
// answers when stdout is redirected.
func Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err == nil {
		return cols, rows, nil
	}
	if c, r, cerr := consoleSize(); cerr == nil {
		return c, r, nil
	}
	return 0, 0, fmt.Errorf("querying terminal size: %w", err)
}
