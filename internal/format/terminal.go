package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	strongStyle   = lipgloss.NewStyle().Bold(true)
	emphasisStyle = lipgloss.NewStyle().Italic(true)
	bulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

// SummaryTerminal renders text for a terminal: bold and italic become
// terminal styles, bullets get the glyph, and lines are wrapped at width.
// Control sequences in text are neutralized with TerminalText before any
// styling is applied.
// width <= 0 disables wrapping. Styles degrade to plain text when the output
// is not a color terminal.
func SummaryTerminal(text string, width int) string {
	var b strings.Builder
	for _, t := range Parse(text) {
		switch t.Kind {
		case TokenText:
			b.WriteString(TerminalText(t.Text))
		case TokenStrong:
			b.WriteString(strongStyle.Render(TerminalText(t.Text)))
		case TokenEmphasis:
			b.WriteString(emphasisStyle.Render(TerminalText(t.Text)))
		case TokenBullet:
			b.WriteString(bulletStyle.Render(BulletGlyph) + " ")
		case TokenLineBreak:
			b.WriteString("\n")
		}
	}

	if width <= 0 {
		return b.String()
	}
	return wordwrap.String(b.String(), width)
}
