package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bulga138/lineedit/buffer"
	"github.com/bulga138/lineedit/style"
)

func TestColorize(t *testing.T) {
	t.Parallel()

	got := style.Colorize("ok", "#ff0000")
	assert.Equal(t, "\x1b[38;2;255;0;0mok\x1b[0m", got)
}

func TestColorize_BadHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", style.Colorize("plain", "not-a-color"))
}

func TestBold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\x1b[1mhi\x1b[0m", style.Bold("hi"))
}

func TestStyledPromptWidth(t *testing.T) {
	t.Parallel()

	// A styled prompt must measure as its visible text once the buffer
	// strips the escapes.
	prompt := style.Bold(style.Colorize("ok> ", "#5fd7ff"))
	l := buffer.NewLine(prompt)
	assert.Equal(t, 4, l.PromptWidth())
}
