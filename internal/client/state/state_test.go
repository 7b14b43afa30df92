package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

var testOpts = Options{
	DefaultPrompt:  "Summarize",
	DefaultSubject: "Meeting Summary",
	SuccessDismiss: 3 * time.Second,
	FailureDismiss: 5 * time.Second,
}

func only[T Effect](t *testing.T, effects []Effect) T {
	t.Helper()
	var found []T
	for _, e := range effects {
		if v, ok := e.(T); ok {
			found = append(found, v)
		}
	}
	require.Len(t, found, 1, "effects: %#v", effects)
	return found[0]
}

func count[T Effect](effects []Effect) int {
	n := 0
	for _, e := range effects {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

// summarized returns a state holding the given summary text.
func summarized(t *testing.T, text string) State {
	t.Helper()
	s := New(testOpts)
	s, _ = s.SetText("notes")
	s, effects := s.Generate()
	eff := only[SummarizeEffect](t, effects)
	s, _ = s.SummaryDone(eff.ID, &models.SummaryResponse{Summary: text, OriginalLength: 5, SummaryLength: len(text)}, nil)
	require.True(t, s.Session.HasSummary())
	return s
}

// sending returns a state with the email dialog waiting on its request.
func sending(t *testing.T) (State, SendEmailEffect) {
	t.Helper()
	s := summarized(t, "summary")
	s, _ = s.OpenEmail()
	s, _ = s.SetRecipients("a@b.com, c@d.org")
	s, effects := s.SubmitEmail()
	eff := only[SendEmailEffect](t, effects)
	require.True(t, s.Email.Sending())
	return s, eff
}

func TestNew_Defaults(t *testing.T) {
	s := New(testOpts)
	assert.Equal(t, "Summarize", s.Input.Prompt)
	assert.Equal(t, "Meeting Summary", s.Email.Subject)
	assert.Equal(t, SourceNone, s.Input.Source.Kind)
	assert.Equal(t, Idle, s.Session.Request)
	assert.Equal(t, ModeEditing, s.Presenter.Mode)
	assert.False(t, s.Email.IsOpen())
}

func TestInput_MutuallyExclusive(t *testing.T) {
	s := New(testOpts)
	f := models.NotesFile{Name: "notes.txt", Data: []byte("hello")}

	s, _ = s.SelectFile(f)
	s, _ = s.SetText("pasted")
	assert.Equal(t, SourceText, s.Input.Source.Kind)
	assert.Nil(t, s.Input.Source.File)

	s, _ = s.SelectFile(f)
	assert.Equal(t, SourceFile, s.Input.Source.Kind)
	assert.Empty(t, s.Input.Source.Text)

	s, _ = s.SetText("")
	assert.Equal(t, SourceFile, s.Input.Source.Kind, "clearing text keeps the file")

	s, _ = s.SetText("x")
	s, _ = s.SetText("")
	assert.True(t, s.Input.Source.Empty())
}

func TestGenerate_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t"} {
		s := New(testOpts)
		s, _ = s.SetText(text)
		s, effects := s.Generate()

		assert.Empty(t, effects)
		assert.False(t, s.Session.Pending())
		require.NotNil(t, s.Session.Failure)
		assert.Equal(t, models.KindValidation, s.Session.Failure.Kind)
		assert.Equal(t, msgEmptyInput, s.Session.Message)
	}
}

func TestGenerate_RequestCarriesInput(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SelectFile(models.NotesFile{Name: "n.txt", Data: []byte("data")})
	s, _ = s.SetPrompt("  Bullet points please  ")

	s, effects := s.Generate()
	eff := only[SummarizeEffect](t, effects)
	require.NotNil(t, eff.Request.File)
	assert.Equal(t, "n.txt", eff.Request.File.Name)
	assert.Empty(t, eff.Request.Text)
	assert.Equal(t, "Bullet points please", eff.Request.Prompt)
	assert.True(t, s.Session.Pending())
	assert.True(t, s.InputLocked())
}

func TestGenerate_SecondWhilePendingIsNoop(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SetText("notes")
	s, first := s.Generate()
	require.Len(t, first, 1)

	s2, second := s.Generate()
	assert.Empty(t, second)
	assert.Equal(t, s, s2)
}

func TestInput_LockedWhilePending(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SetText("notes")
	s, _ = s.Generate()

	s, _ = s.SetText("other")
	s, _ = s.SetPrompt("other")
	s, _ = s.SelectFile(models.NotesFile{Name: "x.txt"})
	assert.Equal(t, "notes", s.Input.Source.Text)
	assert.Equal(t, "Summarize", s.Input.Prompt)
}

func TestSummaryDone_Success(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SetText("notes")
	s, effects := s.Generate()
	eff := only[SummarizeEffect](t, effects)

	s, _ = s.SummaryDone(eff.ID, &models.SummaryResponse{
		Summary: "short", OriginalLength: 5, SummaryLength: 5, Warning: "truncated",
	}, nil)

	assert.Equal(t, Succeeded, s.Session.Request)
	assert.Equal(t, "short", s.Summary())
	assert.Equal(t, "truncated", s.Session.Warning)
	assert.False(t, s.InputLocked())
}

func TestSummaryDone_Failure(t *testing.T) {
	tests := []struct {
		name    string
		failure *models.Failure
		want    string
	}{
		{"server detail", &models.Failure{Kind: models.KindServer, Status: 500, Detail: "model overloaded"}, "model overloaded"},
		{"no detail", &models.Failure{Kind: models.KindTransport}, msgSummaryFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testOpts)
			s, _ = s.SetText("notes")
			s, effects := s.Generate()
			eff := only[SummarizeEffect](t, effects)

			s, _ = s.SummaryDone(eff.ID, nil, tt.failure)
			assert.Equal(t, Failed, s.Session.Request)
			assert.Equal(t, tt.want, s.Session.Message)
			assert.False(t, s.Session.HasSummary())
		})
	}
}

func TestSummaryDone_StaleIDIgnored(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SetText("notes")
	s, _ = s.Generate()

	s2, _ := s.SummaryDone(uuid.New(), &models.SummaryResponse{Summary: "late"}, nil)
	assert.Equal(t, s, s2)
}

func TestGenerate_ClearsPreviousSummary(t *testing.T) {
	s := summarized(t, "old")
	s, _ = s.Generate()
	assert.False(t, s.Session.HasSummary())
	assert.Empty(t, s.Summary())
}

func TestToggleMode_RendersOnEnter(t *testing.T) {
	s := summarized(t, "**Key Decisions**\n* Ship v2\n*owner: Alex*")
	s, _ = s.ToggleMode()
	assert.Equal(t, ModePreviewing, s.Presenter.Mode)
	assert.Equal(t, "<strong>Key Decisions</strong><br/>• Ship v2<br/><em>owner: Alex</em>", s.Presenter.Rendered)

	s, _ = s.ToggleMode()
	assert.Equal(t, ModeEditing, s.Presenter.Mode)
	assert.Empty(t, s.Presenter.Rendered)
}

func TestToggleMode_NeedsSummary(t *testing.T) {
	s := New(testOpts)
	s, _ = s.ToggleMode()
	assert.Equal(t, ModeEditing, s.Presenter.Mode)
}

func TestEditSummary(t *testing.T) {
	s := summarized(t, "draft")
	before := s
	s, _ = s.EditSummary("final")
	assert.Equal(t, "final", s.Summary())
	assert.Equal(t, "draft", before.Summary(), "earlier snapshot must not change")

	s, _ = s.ToggleMode()
	s, _ = s.EditSummary("ignored")
	assert.Equal(t, "final", s.Summary())
}

func TestOpenEmail_NeedsSummary(t *testing.T) {
	s := New(testOpts)
	s, effects := s.OpenEmail()
	assert.Empty(t, effects)
	assert.False(t, s.Email.IsOpen())
}

func TestScrollLock_OpenOpenCloseReleasesOnce(t *testing.T) {
	s := summarized(t, "summary")

	s, e1 := s.OpenEmail()
	s, e2 := s.OpenEmail()
	s, e3 := s.CloseEmail()
	_, e4 := s.CloseEmail()

	all := append(append(append(e1, e2...), e3...), e4...)
	assert.Equal(t, 1, count[AcquireScrollEffect](all))
	assert.Equal(t, 1, count[ReleaseScrollEffect](all))
	assert.Empty(t, e2)
	assert.Empty(t, e4)
}

func TestCloseEmail_Variants(t *testing.T) {
	for name, closeFn := range map[string]func(State) (State, []Effect){
		"close":  State.CloseEmail,
		"escape": State.Escape,
		"click":  State.ClickOutside,
		"toggle": State.ToggleEmail,
	} {
		t.Run(name, func(t *testing.T) {
			s := summarized(t, "summary")
			s, _ = s.OpenEmail()
			s, effects := closeFn(s)
			assert.False(t, s.Email.IsOpen())
			assert.Equal(t, 1, count[ReleaseScrollEffect](effects))
		})
	}
}

func TestCloseEmail_IgnoredWhileSending(t *testing.T) {
	s, _ := sending(t)
	s, effects := s.Escape()
	assert.Empty(t, effects)
	assert.True(t, s.Email.Sending())

	s, _ = s.SetRecipients("x@y.com")
	s, _ = s.SetSubject("changed")
	assert.Equal(t, "a@b.com, c@d.org", s.Email.Recipients)
	assert.Equal(t, "Meeting Summary", s.Email.Subject)
}

func TestValidateRecipients(t *testing.T) {
	r := ValidateRecipients("a@b.com, not-an-email, c@d.org")
	assert.Equal(t, []string{"a@b.com", "c@d.org"}, r.Valid)
	assert.Equal(t, []string{"not-an-email"}, r.Invalid)

	r = ValidateRecipients(" , ,")
	assert.Empty(t, r.Valid)
	assert.Empty(t, r.Invalid)

	r = ValidateRecipients("a@b, a b@c.d, @b.c, x@y.z")
	assert.Equal(t, []string{"x@y.z"}, r.Valid)
	assert.Equal(t, []string{"a@b", "a b@c.d", "@b.c"}, r.Invalid)
}

func TestSubmitEmail_LocalValidation(t *testing.T) {
	tests := []struct {
		name       string
		recipients string
		subject    string
		summary    string
		want       string
	}{
		{"invalid entries", "a@b.com, not-an-email", "S", "sum", "Invalid email address(es): not-an-email"},
		{"no recipients", " , ", "S", "sum", msgNoRecipients},
		{"blank subject", "a@b.com", "   ", "sum", msgBlankSubject},
		{"blank summary", "a@b.com", "S", "  ", msgNoSummary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarized(t, "placeholder")
			s, _ = s.EditSummary(tt.summary)
			s, _ = s.OpenEmail()
			s, _ = s.SetRecipients(tt.recipients)
			s, _ = s.SetSubject(tt.subject)

			s, effects := s.SubmitEmail()
			assert.Empty(t, effects)
			assert.False(t, s.Email.Sending())
			assert.Equal(t, PhaseOpen, s.Email.Phase)
			assert.Equal(t, tt.want, s.Email.Message)
			require.NotNil(t, s.Email.Failure)
			assert.Equal(t, models.KindValidation, s.Email.Failure.Kind)
		})
	}
}

func TestSubmitEmail_Draft(t *testing.T) {
	s := summarized(t, "the summary")
	s, _ = s.OpenEmail()
	s, _ = s.SetRecipients(" a@b.com ,c@d.org ")
	s, _ = s.SetSubject("  Weekly  ")

	s, effects := s.SubmitEmail()
	eff := only[SendEmailEffect](t, effects)
	assert.Equal(t, []string{"a@b.com", "c@d.org"}, eff.Request.To)
	assert.Equal(t, "Weekly", eff.Request.Subject)
	assert.Equal(t, "the summary", eff.Request.Summary)
	assert.Equal(t, "notes", eff.Request.OriginalNotes)

	_, again := s.SubmitEmail()
	assert.Empty(t, again, "second submit while sending")
}

func TestSubmitEmail_FileNotesNotForwarded(t *testing.T) {
	s := New(testOpts)
	s, _ = s.SelectFile(models.NotesFile{Name: "n.txt", Data: []byte("data")})
	s, effects := s.Generate()
	eff := only[SummarizeEffect](t, effects)
	s, _ = s.SummaryDone(eff.ID, &models.SummaryResponse{Summary: "sum"}, nil)

	s, _ = s.OpenEmail()
	s, _ = s.SetRecipients("a@b.com")
	_, effects = s.SubmitEmail()
	assert.Empty(t, only[SendEmailEffect](t, effects).Request.OriginalNotes)
}

func TestEmailDone_SuccessThenDismiss(t *testing.T) {
	s, eff := sending(t)

	s, effects := s.EmailDone(eff.ID, &models.EmailResponse{Success: true}, nil)
	sched := only[ScheduleDismissEffect](t, effects)
	assert.Equal(t, testOpts.SuccessDismiss, sched.After)
	assert.Equal(t, PhaseSent, s.Email.Phase)
	assert.Equal(t, "Email sent successfully to 2 recipient(s)!", s.Email.Message)

	s, effects = s.DismissFired(sched.Tag)
	assert.False(t, s.Email.IsOpen())
	assert.Empty(t, s.Email.Recipients)
	assert.Equal(t, "Meeting Summary", s.Email.Subject)
	assert.Equal(t, 1, count[ReleaseScrollEffect](effects))
}

func TestEmailDone_FailureThenDismiss(t *testing.T) {
	s, eff := sending(t)

	s, effects := s.EmailDone(eff.ID, nil, &models.Failure{Kind: models.KindServer, Status: 503})
	sched := only[ScheduleDismissEffect](t, effects)
	assert.Equal(t, testOpts.FailureDismiss, sched.After)
	assert.Equal(t, PhaseFailed, s.Email.Phase)
	assert.Equal(t, "The email service failed. Please try again later.", s.Email.Message)

	s, _ = s.DismissFired(sched.Tag)
	assert.False(t, s.Email.IsOpen())
	assert.Equal(t, "a@b.com, c@d.org", s.Email.Recipients, "failure keeps the draft")
}

func TestEmailDone_FailureMessages(t *testing.T) {
	tests := []struct {
		failure *models.Failure
		want    string
	}{
		{&models.Failure{Kind: models.KindRejected, Status: 400, Detail: "bad address"}, "The email service rejected the request: bad address"},
		{&models.Failure{Kind: models.KindRejected, Status: 422}, "The email service rejected the request."},
		{&models.Failure{Kind: models.KindServer, Status: 500, Detail: "smtp down"}, "The email service failed: smtp down"},
		{&models.Failure{Kind: models.KindTransport}, msgEmailOffline},
		{&models.Failure{Kind: models.KindUnknown}, msgEmailFailed},
	}
	for _, tt := range tests {
		t.Run(tt.failure.Kind.String(), func(t *testing.T) {
			s, eff := sending(t)
			s, _ = s.EmailDone(eff.ID, nil, tt.failure)
			assert.Equal(t, tt.want, s.Email.Message)
		})
	}
}

func TestEmailDone_Degraded(t *testing.T) {
	s, eff := sending(t)
	mock := json.RawMessage(`{"to":["a@b.com"],"subject":"S"}`)

	s, effects := s.EmailDone(eff.ID, &models.EmailResponse{Success: false, MockEmail: mock}, nil)
	assert.Empty(t, effects)
	assert.Equal(t, PhaseDegraded, s.Email.Phase)
	assert.Contains(t, s.Email.Message, "Email service not configured. This would send: ")
	assert.Contains(t, s.Email.Message, `"subject": "S"`)
	assert.True(t, s.Email.IsOpen())
}

func TestEmailDone_UnsuccessfulWithoutMock(t *testing.T) {
	s, eff := sending(t)
	s, effects := s.EmailDone(eff.ID, &models.EmailResponse{Success: false}, nil)
	assert.Equal(t, PhaseFailed, s.Email.Phase)
	assert.Equal(t, msgEmailFailed, s.Email.Message)
	assert.Equal(t, 1, count[ScheduleDismissEffect](effects))
}

func TestEmailDone_StaleIDIgnored(t *testing.T) {
	s, _ := sending(t)
	s2, effects := s.EmailDone(uuid.New(), &models.EmailResponse{Success: true}, nil)
	assert.Empty(t, effects)
	assert.Equal(t, s, s2)
}

func TestDismiss_ManualCloseMakesTimerInert(t *testing.T) {
	s, eff := sending(t)
	s, effects := s.EmailDone(eff.ID, &models.EmailResponse{Success: true}, nil)
	sched := only[ScheduleDismissEffect](t, effects)

	s, effects = s.CloseEmail()
	cancel := only[CancelDismissEffect](t, effects)
	assert.Equal(t, sched.Tag, cancel.Tag)

	s, _ = s.OpenEmail()
	s2, effects := s.DismissFired(sched.Tag)
	assert.Empty(t, effects)
	assert.Equal(t, s, s2)
	assert.True(t, s2.Email.IsOpen())
	assert.Equal(t, "a@b.com, c@d.org", s2.Email.Recipients)
}

func TestOpenEmail_ClearsTransientState(t *testing.T) {
	s := summarized(t, "summary")
	s, _ = s.OpenEmail()
	s, _ = s.SetRecipients("bad")
	s, _ = s.SubmitEmail()
	require.NotEmpty(t, s.Email.Message)

	s, _ = s.CloseEmail()
	s, _ = s.OpenEmail()
	assert.Empty(t, s.Email.Message)
	assert.Nil(t, s.Email.Failure)
	assert.Empty(t, s.Email.Invalid)
	assert.Equal(t, "bad", s.Email.Recipients)
}

func TestGenerate_ClosesIdleDialog(t *testing.T) {
	s := summarized(t, "summary")
	s, _ = s.OpenEmail()

	s, effects := s.Generate()
	assert.False(t, s.Email.IsOpen())
	assert.Equal(t, 1, count[ReleaseScrollEffect](effects))
	assert.Equal(t, 1, count[SummarizeEffect](effects))
}

func TestGenerate_KeepsSendingDialog(t *testing.T) {
	s, eff := sending(t)
	s, effects := s.Generate()
	assert.True(t, s.Email.Sending())
	assert.Zero(t, count[ReleaseScrollEffect](effects))

	s, _ = s.EmailDone(eff.ID, &models.EmailResponse{Success: true}, nil)
	assert.Equal(t, PhaseSent, s.Email.Phase)
}

func TestTeardown_ReleasesEverything(t *testing.T) {
	s, eff := sending(t)
	s, effects := s.Teardown()
	assert.False(t, s.Email.IsOpen())
	assert.Equal(t, 1, count[ReleaseScrollEffect](effects))

	s2, effects := s.EmailDone(eff.ID, &models.EmailResponse{Success: true}, nil)
	assert.Empty(t, effects)
	assert.Equal(t, s, s2)

	_, effects = s2.Teardown()
	assert.Empty(t, effects)
}
