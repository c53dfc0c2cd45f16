// Package history stores the lines a user has submitted and replays them
// on demand. The reader substitutes an entry into its line buffer when the
// user navigates with the up/down keys.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultMaxSize bounds a History when the caller does not choose a size.
const DefaultMaxSize = 500

// History is a bounded, ordered list of submitted lines with a navigation
// index. Index len(entries) means "not navigating"; Previous walks toward
// the oldest entry and Next back toward the newest. Like the line buffer it
// serves, a History belongs to one reader and is not safe for concurrent
// use.
type History struct {
	entries []string
	index   int
	maxSize int

	// AllowDuplicates keeps consecutive identical entries when set.
	AllowDuplicates bool
	// Cycle wraps navigation around at both ends when set.
	Cycle bool
	// Exclude drops matching lines before they are recorded.
	Exclude func(string) bool
}

// New creates a History bounded to maxSize entries. A maxSize of zero or
// less falls back to DefaultMaxSize.
func New(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &History{
		entries: make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Push records a submitted line and rewinds navigation to the newest end.
// Empty lines, lines matched by Exclude, and (unless AllowDuplicates is
// set) lines equal to the most recent entry are dropped. The oldest entry
// is evicted once the size bound is reached.
func (h *History) Push(line string) {
	defer h.Reset()

	if line == "" {
		return
	}
	if h.Exclude != nil && h.Exclude(line) {
		return
	}
	if !h.AllowDuplicates && len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return
	}

	if len(h.entries) >= h.maxSize {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
}

// Previous steps toward the oldest entry and returns it. The second result
// is false when there is nothing further back (or no entries at all); with
// Cycle set, navigation wraps to the newest entry instead of stopping.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.index == 0 {
		if !h.Cycle {
			return "", false
		}
		h.index = len(h.entries) - 1
		return h.entries[h.index], true
	}
	h.index--
	return h.entries[h.index], true
}

// Next steps back toward the newest entry and returns it. The second
// result is false once navigation has moved past the newest entry; with
// Cycle set it wraps to the oldest instead.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.index >= len(h.entries)-1 {
		if !h.Cycle {
			h.index = len(h.entries)
			return "", false
		}
		h.index = 0
		return h.entries[h.index], true
	}
	h.index++
	return h.entries[h.index], true
}

// Reset rewinds navigation to the newest end, the state after a line is
// submitted.
func (h *History) Reset() {
	h.index = len(h.entries)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear drops all entries and rewinds navigation.
func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.Reset()
}

// Save writes the entries to path, one line per entry, newest last.
func (h *History) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving history to %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range h.entries {
		fmt.Fprintln(w, entry)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("saving history to %s: %w", path, err)
	}
	return nil
}

// Load replaces the entries with the lines read from path, applying the
// same size, duplicate and exclusion rules as Push. A missing file leaves
// the history empty and is not an error.
func (h *History) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading history from %s: %w", path, err)
	}

	h.Clear()
	for _, line := range strings.Split(string(data), "\n") {
		h.Push(strings.TrimRight(line, "\r"))
	}
	return nil
}
