package input

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidChoiceError reports input that matched neither a menu index
// nor an option's text.
type InvalidChoiceError struct {
	Input string
	// Numeric is true when the input parsed as a number that was out
	// of range, which gets the shorter rejection message.
	Numeric bool
}

func (e *InvalidChoiceError) Error() string {
	if e.Numeric {
		return fmt.Sprintf("'%s' is not a valid choice.", e.Input)
	}
	return fmt.Sprintf("Try again. '%s' is not a valid choice.", e.Input)
}

// ParseChoice resolves one line of input against a 1-indexed option
// list. The line may be the option's number or a case-insensitive
// exact match of its text. Returns the zero-based index of the chosen
// option, or an *InvalidChoiceError.
func ParseChoice(options []string, line string) (int, error) {
	choice := strings.ToLower(strings.TrimSpace(line))

	if num, err := strconv.Atoi(choice); err == nil {
		if num > 0 && num <= len(options) {
			return num - 1, nil
		}
		return -1, &InvalidChoiceError{Input: choice, Numeric: true}
	}

	for i, option := range options {
		if strings.ToLower(option) == choice {
			return i, nil
		}
	}
	return -1, &InvalidChoiceError{Input: choice}
}
