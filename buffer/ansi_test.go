package buffer

import "testing"

func TestStripEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "plain text", "plain text"},
		{"empty", "", ""},
		{"color sequence", "\x1b[32mgreen\x1b[0m", "green"},
		{"multi param", "\x1b[1;31mbold red\x1b[0m", "bold red"},
		{"private mode params", "\x1b[?25lhidden\x1b[?25h", "hidden"},
		{"cursor movement", "\x1b[2Aup", "up"},
		{"bracket wrapped", "[\x1b[33m]amber", "amber"},
		{"bare escape with letter", "\x1bMtext", "text"},
		{"sequence mid string", "a\x1b[0mb", "ab"},
		{"consecutive sequences", "\x1b[1m\x1b[4mx\x1b[0m", "x"},
		{"truecolor", "\x1b[38;2;255;0;0mred\x1b[0m", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripEscapes(tt.input); got != tt.want {
				t.Errorf("stripEscapes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
