package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Escape sequence clearing the screen and scrollback, cursor to home.
const clearSequence = "\x1b[2J\x1b[3J\x1b[H"

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Clear clears the screen when ansi is enabled; otherwise it just
// writes a separating newline so message content is unaffected.
func Clear(w io.Writer, ansi bool) {
	if ansi {
		fmt.Fprint(w, clearSequence)
		return
	}
	fmt.Fprintln(w)
}
