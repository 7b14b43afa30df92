package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const replacementChar = '�'

// TerminalText makes s safe to write to a terminal. Escape sequences are
// removed and any remaining C0 or C1 control character other than newline
// and tab becomes U+FFFD, so text from the service can never drive the
// terminal.
func TerminalText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20, r >= 0x7f && r <= 0x9f:
			return replacementChar
		default:
			return r
		}
	}, s)
}
