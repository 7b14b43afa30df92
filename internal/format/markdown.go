// Package format renders summary text for display.
//
// Summaries use a small Markdown subset: **bold**, *italic*, line breaks and
// "* " bullets at the start of a line. Nothing else is recognized. Parse
// turns text into a flat token stream; SummaryHTML and SummaryTerminal are
// two renderers over the same stream.
package format

import (
	"regexp"
	"strings"
)

// TokenKind identifies a rendered fragment.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenStrong
	TokenEmphasis
	TokenBullet
	TokenLineBreak
)

// BulletGlyph replaces a leading "* " marker.
const BulletGlyph = "•"

// Token is one fragment of parsed summary text. Text is empty for
// TokenBullet and TokenLineBreak.
type Token struct {
	Kind TokenKind
	Text string
}

// inlineRx matches **bold** first, then *italic*. The marked text may not
// start or end with a space. Markers never span lines and never nest, so a
// single left-to-right pass consumes each one once.
var inlineRx = regexp.MustCompile(`\*\*([^*\s](?:[^*\n]*[^*\s])?)\*\*|\*([^*\s](?:[^*\n]*[^*\s])?)\*`)

// Parse splits text into tokens. Lines are separated by TokenLineBreak;
// "\r\n" is treated as "\n".
func Parse(text string) []Token {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	tokens := make([]Token, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			tokens = append(tokens, Token{Kind: TokenLineBreak})
		}
		if rest, ok := strings.CutPrefix(line, "* "); ok {
			tokens = append(tokens, Token{Kind: TokenBullet})
			line = rest
		}
		tokens = appendInline(tokens, line)
	}
	return tokens
}

func appendInline(tokens []Token, line string) []Token {
	pos := 0
	for _, m := range inlineRx.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > pos {
			tokens = append(tokens, Token{Kind: TokenText, Text: line[pos:m[0]]})
		}
		if m[2] >= 0 {
			tokens = append(tokens, Token{Kind: TokenStrong, Text: line[m[2]:m[3]]})
		} else {
			tokens = append(tokens, Token{Kind: TokenEmphasis, Text: line[m[4]:m[5]]})
		}
		pos = m[1]
	}
	if pos < len(line) {
		tokens = append(tokens, Token{Kind: TokenText, Text: line[pos:]})
	}
	return tokens
}
