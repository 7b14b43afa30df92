package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// Options are the fixed parameters of a State.
type Options struct {
	DefaultPrompt  string
	DefaultSubject string
	SuccessDismiss time.Duration
	FailureDismiss time.Duration
}

// State is the whole client UI state. The zero value is not useful; use New.
type State struct {
	Input     Input
	Session   Session
	Presenter Presenter
	Email     EmailDialog

	opts Options
}

// New returns the initial state: no input, default prompt and subject,
// editing mode, dialog closed.
func New(opts Options) State {
	return State{
		Input: Input{Prompt: opts.DefaultPrompt},
		Email: EmailDialog{Subject: opts.DefaultSubject},
		opts:  opts,
	}
}

// Summary returns the current summary text, or "" when there is none.
func (s State) Summary() string {
	if s.Session.Summary == nil {
		return ""
	}
	return s.Session.Summary.Text
}

// InputLocked reports whether input controls are disabled.
func (s State) InputLocked() bool {
	return s.Session.Pending()
}

// SelectFile replaces the input with a file. Ignored while summarizing.
func (s State) SelectFile(f models.NotesFile) (State, []Effect) {
	if s.InputLocked() {
		return s, nil
	}
	s.Input = s.Input.SelectFile(f)
	return s, nil
}

// SetText replaces the input with pasted text. Ignored while summarizing.
func (s State) SetText(text string) (State, []Effect) {
	if s.InputLocked() {
		return s, nil
	}
	s.Input = s.Input.SetText(text)
	return s, nil
}

// SetPrompt replaces the prompt override. Ignored while summarizing.
func (s State) SetPrompt(p string) (State, []Effect) {
	if s.InputLocked() {
		return s, nil
	}
	s.Input = s.Input.SetPrompt(p)
	return s, nil
}

// Generate starts a summarization. It is a no-op while one is pending and a
// local validation failure when there is no input. Starting clears the
// previous summary, so an open email dialog is closed unless it is sending.
func (s State) Generate() (State, []Effect) {
	if s.Session.Pending() {
		return s, nil
	}

	session, effects := s.Session.start(s.Input)
	if !session.Pending() {
		s.Session = session
		return s, effects
	}
	s.Session = session

	if !s.Email.Sending() {
		var closeEffects []Effect
		s.Email, closeEffects = s.Email.close()
		effects = append(closeEffects, effects...)
	}
	s.Presenter = s.Presenter.refresh("")
	return s, effects
}

// SummaryDone delivers the outcome of the summarization tagged id. Exactly
// one of resp and f should be non-nil.
func (s State) SummaryDone(id uuid.UUID, resp *models.SummaryResponse, f *models.Failure) (State, []Effect) {
	s.Session = s.Session.done(id, resp, f)
	s.Presenter = s.Presenter.refresh(s.Summary())
	return s, nil
}

// ToggleMode flips between editing and previewing. Entering preview renders
// the current text.
func (s State) ToggleMode() (State, []Effect) {
	if !s.Session.HasSummary() {
		return s, nil
	}
	s.Presenter = s.Presenter.toggle(s.Summary())
	return s, nil
}

// EditSummary overwrites the summary text. Only valid while editing.
func (s State) EditSummary(text string) (State, []Effect) {
	if !s.Session.HasSummary() || s.Presenter.Mode != ModeEditing {
		return s, nil
	}
	art := *s.Session.Summary
	art.Text = text
	s.Session.Summary = &art
	return s, nil
}

// OpenEmail shows the dialog. It needs a summary and is idempotent.
func (s State) OpenEmail() (State, []Effect) {
	if !s.Session.HasSummary() {
		return s, nil
	}
	var effects []Effect
	s.Email, effects = s.Email.open()
	return s, effects
}

// CloseEmail hides the dialog unless a send is in flight.
func (s State) CloseEmail() (State, []Effect) {
	var effects []Effect
	s.Email, effects = s.Email.close()
	return s, effects
}

// Escape is the escape key: same as CloseEmail.
func (s State) Escape() (State, []Effect) {
	return s.CloseEmail()
}

// ClickOutside is a click outside the dialog: same as CloseEmail.
func (s State) ClickOutside() (State, []Effect) {
	return s.CloseEmail()
}

// ToggleEmail opens a closed dialog and closes an open one.
func (s State) ToggleEmail() (State, []Effect) {
	if s.Email.IsOpen() {
		return s.CloseEmail()
	}
	return s.OpenEmail()
}

// SetRecipients stores the raw comma-separated recipient text.
func (s State) SetRecipients(raw string) (State, []Effect) {
	s.Email = s.Email.setRecipients(raw)
	return s, nil
}

// SetSubject stores the subject line.
func (s State) SetSubject(subject string) (State, []Effect) {
	s.Email = s.Email.setSubject(subject)
	return s, nil
}

// SubmitEmail validates the draft and, if it is sendable, emits one
// SendEmailEffect. Validation problems are reported on the dialog without
// any request.
func (s State) SubmitEmail() (State, []Effect) {
	var effects []Effect
	s.Email, effects = s.Email.submit(s.Summary(), s.Input)
	return s, effects
}

// EmailDone delivers the outcome of the send tagged id.
func (s State) EmailDone(id uuid.UUID, resp *models.EmailResponse, f *models.Failure) (State, []Effect) {
	var effects []Effect
	s.Email, effects = s.Email.done(id, resp, f, s.opts)
	return s, effects
}

// DismissFired is the callback of a ScheduleDismissEffect.
func (s State) DismissFired(tag uuid.UUID) (State, []Effect) {
	var effects []Effect
	s.Email, effects = s.Email.dismiss(tag)
	return s, effects
}

// Teardown closes the dialog unconditionally so the scroll lock and the
// dismiss timer are released. Used when the host shuts down.
func (s State) Teardown() (State, []Effect) {
	var effects []Effect
	s.Email, effects = s.Email.forceClose()
	return s, effects
}
