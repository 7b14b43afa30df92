// Package models defines the wire types exchanged with the summarizer API
// and the closed set of failure kinds the client reports.
package models

// NotesFile is an uploaded notes file.
type NotesFile struct {
	Name string
	Data []byte
}

// SummaryRequest is the payload of POST /summarize. Exactly one of File and
// Text is used; File wins when both are set. An empty Prompt is omitted so
// the server applies its default.
type SummaryRequest struct {
	File   *NotesFile
	Text   string
	Prompt string
}

// SummaryResponse is the success body of POST /summarize.
type SummaryResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"originalLength,omitempty"`
	SummaryLength  int    `json:"summaryLength,omitempty"`
	Warning        string `json:"warning,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
