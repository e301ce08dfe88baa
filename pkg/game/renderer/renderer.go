// Package renderer provides the styled text output for the manor:
// color helpers, message markup, and typewriter printing.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorDenied   color.Style
	ColorGood     color.Style
	ColorPrize    color.Style
	ColorInfo     color.Style
	ColorCurious  color.Style
	ColorTitle    color.Style
	ColorEmphasis color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles. When enabled is false all
// styling becomes a no-op; message content and numbering are
// unaffected either way.
func InitColors(enabled bool) {
	if !enabled {
		color.Disable()
	}

	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorGood = color.Style{color.FgGreen, color.OpBold}
	ColorPrize = color.Style{color.FgYellow, color.OpBold}
	ColorInfo = color.Style{color.FgBlue, color.OpBold}
	ColorCurious = color.Style{color.FgMagenta, color.OpBold}
	ColorTitle = color.Style{color.FgWhite, color.OpUnderscore}
	ColorEmphasis = color.Style{color.FgWhite, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)
}

// Styling helpers matching the manor's original palette.
func Red(s string) string       { return ColorDenied.Sprint(s) }
func Green(s string) string     { return ColorGood.Sprint(s) }
func Yellow(s string) string    { return ColorPrize.Sprint(s) }
func Blue(s string) string      { return ColorInfo.Sprint(s) }
func Pink(s string) string      { return ColorCurious.Sprint(s) }
func Bold(s string) string      { return ColorEmphasis.Sprint(s) }
func Underline(s string) string { return ColorTitle.Sprint(s) }

// FormatString formats a string with special markup: GT{key} is
// translated, DENIED{...}, GOOD{...}, PRIZE{...}, TITLE{...} and
// BOLD{...} are styled.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	if regexpStringFunctions == nil {
		InitColors(true)
	}

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "DENIED":
			val = Red(operand)
		case "GOOD":
			val = Green(operand)
		case "PRIZE":
			val = Yellow(operand)
		case "TITLE":
			val = Underline(operand)
		case "BOLD":
			val = Bold(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string to w
func PrintString(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}

// PrintSlow prints text one rune at a time with the given delay,
// like a typewriter. A zero delay prints at once.
func PrintSlow(w io.Writer, delay time.Duration, msg string) {
	if delay <= 0 {
		fmt.Fprint(w, msg)
		return
	}
	for _, r := range msg {
		fmt.Fprint(w, string(r))
		time.Sleep(delay)
	}
}
