package state

import (
	"github.com/google/uuid"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// RequestState is the lifecycle of one request.
type RequestState int

const (
	Idle RequestState = iota
	Pending
	Succeeded
	Failed
)

func (r RequestState) String() string {
	switch r {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	msgEmptyInput    = "Please provide either a text file or enter text directly"
	msgSummaryFailed = "Failed to generate summary"
)

// SummaryArtifact is the result of a successful summarization. Text is
// editable afterwards.
type SummaryArtifact struct {
	Text           string
	OriginalLength int
	SummaryLength  int
}

// Session is the Summarization Session.
type Session struct {
	Request RequestState
	Summary *SummaryArtifact
	Warning string
	Failure *models.Failure
	Message string

	pendingID uuid.UUID
}

// Pending reports whether a summarization request is in flight.
func (s Session) Pending() bool {
	return s.Request == Pending
}

// HasSummary reports whether there is a summary to show.
func (s Session) HasSummary() bool {
	return s.Summary != nil
}

func (s Session) start(in Input) (Session, []Effect) {
	if s.Pending() {
		return s, nil
	}
	if in.Source.Empty() {
		s.Failure = models.Validation(msgEmptyInput)
		s.Message = msgEmptyInput
		return s, nil
	}

	id := uuid.New()
	s = Session{Request: Pending, pendingID: id}
	return s, []Effect{SummarizeEffect{ID: id, Request: in.summaryRequest()}}
}

func (s Session) done(id uuid.UUID, resp *models.SummaryResponse, f *models.Failure) Session {
	if !s.Pending() || id != s.pendingID {
		return s
	}
	s.pendingID = uuid.Nil

	if f == nil && resp == nil {
		f = &models.Failure{Kind: models.KindUnknown}
	}
	if f != nil {
		s.Request = Failed
		s.Failure = f
		s.Message = summaryFailureMessage(f)
		return s
	}

	s.Request = Succeeded
	s.Summary = &SummaryArtifact{
		Text:           resp.Summary,
		OriginalLength: resp.OriginalLength,
		SummaryLength:  resp.SummaryLength,
	}
	s.Warning = resp.Warning
	return s
}

func summaryFailureMessage(f *models.Failure) string {
	if f.Detail != "" {
		return f.Detail
	}
	return msgSummaryFailed
}
