//go:build !windows

package terminal

import "errors"

// consoleSize has no extra fallback outside Windows; x/term already covers
// the Unix ioctl path.
func consoleSize() (int, int, error) {
	return 0, 0, errors.New("no console fallback on this platform")
}
