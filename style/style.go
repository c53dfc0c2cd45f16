// Package style builds colored prompt fragments. The sequences it emits
// are exactly the shape the buffer's width calculation strips, so a styled
// prompt measures as its visible text.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const reset = "\x1b[0m"

// Colorize wraps s in a 24-bit foreground color given as a hex string such
// as "#5fd7ff". An unparseable color leaves s unchanged.
func Colorize(s, hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return s
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", r, g, b, s, reset)
}

// Bold wraps s in the bold attribute.
func Bold(s string) string {
	return "\x1b[1m" + s + reset
}
