package state

import "github.com/dmitrijs2005/notesummarizer/internal/format"

// Mode is how the summary is shown.
type Mode int

const (
	// ModeEditing shows raw, editable text.
	ModeEditing Mode = iota
	// ModePreviewing shows the rendered, read-only text.
	ModePreviewing
)

func (m Mode) String() string {
	if m == ModePreviewing {
		return "preview"
	}
	return "edit"
}

// Presenter is the Summary Presenter. Rendered holds the HTML rendering of
// the summary taken when preview was entered; it is empty while editing.
type Presenter struct {
	Mode     Mode
	Rendered string
}

func (p Presenter) toggle(text string) Presenter {
	if p.Mode == ModeEditing {
		return Presenter{Mode: ModePreviewing, Rendered: format.SummaryHTML(text)}
	}
	return Presenter{Mode: ModeEditing}
}

func (p Presenter) refresh(text string) Presenter {
	if p.Mode == ModePreviewing {
		p.Rendered = format.SummaryHTML(text)
	}
	return p
}
