// Package input reads line-oriented player input and parses menu
// choices. Parsing is a pure function so the retry-until-valid loop
// can live in a thin outer driver.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads one trimmed line of input per call.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a line reader over the given source
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine blocks for one line of input and returns it with
// surrounding whitespace removed. Returns io.EOF when the source is
// exhausted.
func (r *Reader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}
