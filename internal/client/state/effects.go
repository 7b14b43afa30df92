package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// Effect is a side effect requested by a transition.
type Effect interface {
	isEffect()
}

// SummarizeEffect asks the host to POST the request to /summarize and to
// report back with State.SummaryDone(ID, ...).
type SummarizeEffect struct {
	ID      uuid.UUID
	Request models.SummaryRequest
}

// SendEmailEffect asks the host to POST the draft to /email and to report
// back with State.EmailDone(ID, ...).
type SendEmailEffect struct {
	ID      uuid.UUID
	Request models.EmailRequest
}

// ScheduleDismissEffect asks the host to call State.DismissFired(Tag) after
// the delay.
type ScheduleDismissEffect struct {
	Tag   uuid.UUID
	After time.Duration
}

// CancelDismissEffect withdraws a scheduled dismiss. Firing it anyway is
// harmless: the tag no longer matches.
type CancelDismissEffect struct {
	Tag uuid.UUID
}

// AcquireScrollEffect suppresses scrolling of the host page.
type AcquireScrollEffect struct{}

// ReleaseScrollEffect restores scrolling of the host page.
type ReleaseScrollEffect struct{}

func (SummarizeEffect) isEffect()       {}
func (SendEmailEffect) isEffect()       {}
func (ScheduleDismissEffect) isEffect() {}
func (CancelDismissEffect) isEffect()   {}
func (AcquireScrollEffect) isEffect()   {}
func (ReleaseScrollEffect) isEffect()   {}
