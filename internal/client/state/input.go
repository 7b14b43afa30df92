package state

import (
	"strings"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// SourceKind tells which input variant is active.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceFile
	SourceText
)

// InputSource is the notes to summarize: a file or pasted text, never both.
type InputSource struct {
	Kind SourceKind
	File *models.NotesFile
	Text string
}

// Empty reports whether there is nothing to summarize. Whitespace-only text
// counts as empty.
func (s InputSource) Empty() bool {
	switch s.Kind {
	case SourceFile:
		return s.File == nil
	case SourceText:
		return strings.TrimSpace(s.Text) == ""
	default:
		return true
	}
}

// Input is the Input Manager: the current source plus the prompt override.
type Input struct {
	Source InputSource
	Prompt string
}

// SelectFile makes f the source and drops any pasted text.
func (in Input) SelectFile(f models.NotesFile) Input {
	in.Source = InputSource{Kind: SourceFile, File: &f}
	return in
}

// SetText makes text the source when it is non-empty, dropping a selected
// file. Clearing the text leaves a selected file alone.
func (in Input) SetText(text string) Input {
	if text != "" {
		in.Source = InputSource{Kind: SourceText, Text: text}
		return in
	}
	if in.Source.Kind == SourceText {
		in.Source = InputSource{}
	}
	return in
}

// SetPrompt stores the prompt override verbatim.
func (in Input) SetPrompt(p string) Input {
	in.Prompt = p
	return in
}

func (in Input) summaryRequest() models.SummaryRequest {
	req := models.SummaryRequest{Prompt: strings.TrimSpace(in.Prompt)}
	if in.Source.Kind == SourceFile {
		f := *in.Source.File
		req.File = &f
	} else {
		req.Text = in.Source.Text
	}
	return req
}

// originalNotes is the pasted text to forward with an email; files are
// never forwarded.
func (in Input) originalNotes() string {
	if in.Source.Kind == SourceText {
		return in.Source.Text
	}
	return ""
}
