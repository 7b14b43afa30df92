package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// Phase is the lifecycle of the email dialog.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseSending
	PhaseSent
	PhaseDegraded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseSending:
		return "sending"
	case PhaseSent:
		return "sent"
	case PhaseDegraded:
		return "degraded"
	case PhaseFailed:
		return "failed"
	default:
		return "closed"
	}
}

const (
	msgNoRecipients  = "Please enter at least one email address"
	msgBlankSubject  = "Please enter a subject"
	msgNoSummary     = "No summary to send"
	msgEmailFailed   = "Failed to send email"
	msgEmailOffline  = "Could not reach the email service. Check your connection and try again."
	msgEmailRejected = "The email service rejected the request"
	msgEmailServer   = "The email service failed"
	msgMockPrefix    = "Email service not configured. This would send: "
)

// EmailDialog is the Email Dialog. Recipients and Subject survive closing;
// Message, Failure, Invalid and MockEmail are transient and cleared on close.
type EmailDialog struct {
	Phase      Phase
	Recipients string
	Subject    string

	Invalid   []string
	Message   string
	Failure   *models.Failure
	MockEmail json.RawMessage

	requestID  uuid.UUID
	sentTo     int
	timer      uuid.UUID
	scrollHeld bool
}

// IsOpen reports whether the dialog is shown.
func (d EmailDialog) IsOpen() bool {
	return d.Phase != PhaseClosed
}

// Sending reports whether an email request is in flight.
func (d EmailDialog) Sending() bool {
	return d.Phase == PhaseSending
}

func (d EmailDialog) open() (EmailDialog, []Effect) {
	if d.IsOpen() {
		return d, nil
	}
	d, effects := d.resetTransient()
	d.Phase = PhaseOpen
	if !d.scrollHeld {
		d.scrollHeld = true
		effects = append(effects, AcquireScrollEffect{})
	}
	return d, effects
}

func (d EmailDialog) close() (EmailDialog, []Effect) {
	if !d.IsOpen() || d.Sending() {
		return d, nil
	}
	return d.forceClose()
}

// forceClose closes regardless of phase. Only teardown and close use it.
func (d EmailDialog) forceClose() (EmailDialog, []Effect) {
	d, effects := d.resetTransient()
	d.Phase = PhaseClosed
	d.requestID = uuid.Nil
	if d.scrollHeld {
		d.scrollHeld = false
		effects = append(effects, ReleaseScrollEffect{})
	}
	return d, effects
}

// resetTransient drops the message and withdraws its timer.
func (d EmailDialog) resetTransient() (EmailDialog, []Effect) {
	var effects []Effect
	if d.timer != uuid.Nil {
		effects = append(effects, CancelDismissEffect{Tag: d.timer})
		d.timer = uuid.Nil
	}
	d.Invalid = nil
	d.Message = ""
	d.Failure = nil
	d.MockEmail = nil
	return d, effects
}

func (d EmailDialog) setRecipients(raw string) EmailDialog {
	if !d.Sending() {
		d.Recipients = raw
	}
	return d
}

func (d EmailDialog) setSubject(subject string) EmailDialog {
	if !d.Sending() {
		d.Subject = subject
	}
	return d
}

func (d EmailDialog) submit(summary string, in Input) (EmailDialog, []Effect) {
	if !d.IsOpen() || d.Sending() {
		return d, nil
	}
	d, effects := d.resetTransient()
	d.Phase = PhaseOpen

	r := ValidateRecipients(d.Recipients)
	switch {
	case len(r.Invalid) > 0:
		d.Invalid = r.Invalid
		return d.rejectLocally(fmt.Sprintf("Invalid email address(es): %s", strings.Join(r.Invalid, ", "))), effects
	case len(r.Valid) == 0:
		return d.rejectLocally(msgNoRecipients), effects
	case strings.TrimSpace(d.Subject) == "":
		return d.rejectLocally(msgBlankSubject), effects
	case strings.TrimSpace(summary) == "":
		return d.rejectLocally(msgNoSummary), effects
	}

	d.Phase = PhaseSending
	d.requestID = uuid.New()
	d.sentTo = len(r.Valid)
	draft := models.EmailRequest{
		To:            r.Valid,
		Subject:       strings.TrimSpace(d.Subject),
		Summary:       summary,
		OriginalNotes: in.originalNotes(),
	}
	return d, append(effects, SendEmailEffect{ID: d.requestID, Request: draft})
}

func (d EmailDialog) rejectLocally(msg string) EmailDialog {
	d.Failure = models.Validation(msg)
	d.Message = msg
	return d
}

func (d EmailDialog) done(id uuid.UUID, resp *models.EmailResponse, f *models.Failure, opts Options) (EmailDialog, []Effect) {
	if !d.Sending() || id != d.requestID {
		return d, nil
	}
	d.requestID = uuid.Nil

	switch {
	case f != nil:
		return d.fail(f, opts.FailureDismiss)
	case resp == nil:
		return d.fail(&models.Failure{Kind: models.KindUnknown}, opts.FailureDismiss)
	case resp.Success:
		d.Phase = PhaseSent
		d.Message = fmt.Sprintf("Email sent successfully to %d recipient(s)!", d.sentTo)
		return d.schedule(opts.SuccessDismiss)
	case resp.Degraded():
		d.Phase = PhaseDegraded
		d.MockEmail = resp.MockEmail
		d.Message = msgMockPrefix + prettyJSON(resp.MockEmail)
		return d, nil
	default:
		return d.fail(&models.Failure{Kind: models.KindUnknown}, opts.FailureDismiss)
	}
}

func (d EmailDialog) fail(f *models.Failure, after time.Duration) (EmailDialog, []Effect) {
	d.Phase = PhaseFailed
	d.Failure = f
	d.Message = emailFailureMessage(f)
	return d.schedule(after)
}

func (d EmailDialog) schedule(after time.Duration) (EmailDialog, []Effect) {
	d.timer = uuid.New()
	return d, []Effect{ScheduleDismissEffect{Tag: d.timer, After: after}}
}

func (d EmailDialog) dismiss(tag uuid.UUID) (EmailDialog, []Effect) {
	if tag == uuid.Nil || tag != d.timer {
		return d, nil
	}
	d.timer = uuid.Nil

	switch d.Phase {
	case PhaseSent:
		d, effects := d.close()
		d.Recipients = ""
		return d, effects
	case PhaseFailed:
		return d.close()
	default:
		return d, nil
	}
}

func emailFailureMessage(f *models.Failure) string {
	switch f.Kind {
	case models.KindRejected:
		if f.Detail != "" {
			return msgEmailRejected + ": " + f.Detail
		}
		return msgEmailRejected + "."
	case models.KindServer:
		if f.Detail != "" {
			return msgEmailServer + ": " + f.Detail
		}
		return msgEmailServer + ". Please try again later."
	case models.KindTransport:
		return msgEmailOffline
	default:
		return msgEmailFailed
	}
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
