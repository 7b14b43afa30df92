package format

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SummaryHTML renders text as an HTML fragment. Every piece of source text
// ends up in an escaped text node; the only elements produced are strong,
// em and br.
func SummaryHTML(text string) string {
	var b strings.Builder
	for _, n := range nodes(Parse(text)) {
		// Rendering into a strings.Builder cannot fail.
		_ = html.Render(&b, n)
	}
	return b.String()
}

func nodes(tokens []Token) []*html.Node {
	out := make([]*html.Node, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case TokenText:
			out = append(out, textNode(t.Text))
		case TokenStrong:
			out = append(out, element(atom.Strong, textNode(t.Text)))
		case TokenEmphasis:
			out = append(out, element(atom.Em, textNode(t.Text)))
		case TokenBullet:
			out = append(out, textNode(BulletGlyph+" "))
		case TokenLineBreak:
			out = append(out, element(atom.Br, nil))
		}
	}
	return out
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func element(a atom.Atom, child *html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if child != nil {
		n.AppendChild(child)
	}
	return n
}
