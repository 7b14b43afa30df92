package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notesummarizer/internal/client/controller"
	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
	"github.com/dmitrijs2005/notesummarizer/internal/client/state"
	"github.com/dmitrijs2005/notesummarizer/internal/filex"
	"github.com/dmitrijs2005/notesummarizer/internal/format"
)

var (
	errBusy         = errors.New("a summary is being generated, please wait")
	errNoSummary    = errors.New("no summary yet, run 'generate' first")
	errDialogClosed = errors.New("the email dialog is closed, run 'share' first")
)

func (a *App) inputUnlocked() error {
	if a.ctrl.Snapshot().InputLocked() {
		return errBusy
	}
	return nil
}

func (a *App) LoadFile(ctx context.Context, path string) error {
	if err := a.inputUnlocked(); err != nil {
		return err
	}
	name, data, err := filex.ReadNotes(path, a.config.MaxFileBytes)
	if err != nil {
		a.log.Warn(ctx, "read notes file failed", "path", path, "error", err)
		return err
	}
	if !filex.AcceptsNotes(name) {
		a.printf("Note: only %s files are supported; the server may reject %s.\n", filex.NotesExt, name)
	}

	a.ctrl.Dispatch(controller.Bind(state.State.SelectFile, models.NotesFile{Name: name, Data: data}))
	a.printf("Loaded %s (%d bytes).\n", name, len(data))
	return nil
}

func (a *App) Paste(ctx context.Context) error {
	if err := a.inputUnlocked(); err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Paste your meeting notes:", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println("Nothing pasted.")
		return nil
	}
	a.ctrl.Dispatch(controller.Bind(state.State.SetText, text))
	a.printf("Notes set (%d characters).\n", len(text))
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if err := a.inputUnlocked(); err != nil {
		return err
	}
	a.ctrl.Dispatch(controller.Bind(state.State.SetText, ""))
	a.println("Pasted notes cleared.")
	return nil
}

func (a *App) Prompt(ctx context.Context, text string) error {
	if err := a.inputUnlocked(); err != nil {
		return err
	}
	if text == "" {
		var err error
		text, err = GetSimpleText(a.reader, fmt.Sprintf("Current prompt: %s\nNew prompt (empty keeps it):", format.TerminalText(a.ctrl.Snapshot().Input.Prompt)), a.out)
		if err != nil {
			return err
		}
		if text == "" {
			return nil
		}
	}
	a.ctrl.Dispatch(controller.Bind(state.State.SetPrompt, text))
	a.println("Prompt updated.")
	return nil
}

func (a *App) Generate(ctx context.Context) error {
	a.ctrl.Dispatch(state.State.Generate)

	s := a.ctrl.Snapshot()
	if s.Session.Pending() {
		a.println("Generating summary...")
		return nil
	}
	if s.Session.Failure != nil && s.Session.Failure.Kind == models.KindValidation {
		a.println(format.TerminalText(s.Session.Message))
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if s.Session.Pending() {
		a.println("Generating summary...")
		return nil
	}
	if !s.Session.HasSummary() {
		return errNoSummary
	}

	sum := s.Session.Summary
	a.printf("Summary (%s mode, %d -> %d characters)\n\n", s.Presenter.Mode, sum.OriginalLength, sum.SummaryLength)
	if s.Presenter.Mode == state.ModePreviewing {
		a.println(format.SummaryTerminal(sum.Text, a.width()))
	} else {
		a.println(format.TerminalText(sum.Text))
	}
	if s.Session.Warning != "" {
		a.println()
		a.println("Warning:", format.TerminalText(s.Session.Warning))
	}
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if !s.Session.HasSummary() {
		return errNoSummary
	}
	if s.Presenter.Mode != state.ModeEditing {
		a.println("Switch to edit mode first ('toggle').")
		return nil
	}
	text, err := GetMultiline(a.reader, "Enter the new summary text:", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println("Summary unchanged.")
		return nil
	}
	a.ctrl.Dispatch(controller.Bind(state.State.EditSummary, text))
	a.println("Summary updated.")
	return nil
}

func (a *App) Toggle(ctx context.Context) error {
	if !a.ctrl.Snapshot().Session.HasSummary() {
		return errNoSummary
	}
	a.ctrl.Dispatch(state.State.ToggleMode)
	a.printf("Now in %s mode.\n", a.ctrl.Snapshot().Presenter.Mode)
	return nil
}

func (a *App) HTML(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if !s.Session.HasSummary() {
		return errNoSummary
	}
	if s.Presenter.Mode != state.ModePreviewing {
		a.println("Switch to preview mode first ('toggle').")
		return nil
	}
	a.println(format.TerminalText(s.Presenter.Rendered))
	return nil
}

func (a *App) Share(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if !s.Session.HasSummary() {
		return errNoSummary
	}
	if s.Email.Sending() {
		a.println("Sending email...")
		return nil
	}
	a.ctrl.Dispatch(state.State.ToggleEmail)
	return nil
}

func (a *App) To(ctx context.Context, recipients string) error {
	s := a.ctrl.Snapshot()
	if !s.Email.IsOpen() {
		return errDialogClosed
	}
	if s.Email.Sending() {
		a.println("Sending email...")
		return nil
	}
	a.ctrl.Dispatch(controller.Bind(state.State.SetRecipients, recipients))
	return nil
}

func (a *App) Subject(ctx context.Context, subject string) error {
	s := a.ctrl.Snapshot()
	if !s.Email.IsOpen() {
		return errDialogClosed
	}
	if s.Email.Sending() {
		a.println("Sending email...")
		return nil
	}
	a.ctrl.Dispatch(controller.Bind(state.State.SetSubject, subject))
	return nil
}

func (a *App) Send(ctx context.Context) error {
	if !a.ctrl.Snapshot().Email.IsOpen() {
		return errDialogClosed
	}
	a.ctrl.Dispatch(state.State.SubmitEmail)

	s := a.ctrl.Snapshot()
	switch {
	case s.Email.Sending():
		a.println("Sending email...")
	case s.Email.Failure != nil && s.Email.Failure.Kind == models.KindValidation:
		a.println(format.TerminalText(s.Email.Message))
	}
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if s.Email.Sending() {
		a.println("Sending email...")
		return nil
	}
	a.ctrl.Dispatch(state.State.Escape)
	return nil
}

func (a *App) Copy(ctx context.Context) error {
	s := a.ctrl.Snapshot()
	if !s.Session.HasSummary() {
		return errNoSummary
	}
	if err := clipboardWrite(s.Summary()); err != nil {
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.println("Summary copied to clipboard.")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	s := a.ctrl.Snapshot()

	switch s.Input.Source.Kind {
	case state.SourceFile:
		a.printf("Notes:    file %s (%d bytes)\n", s.Input.Source.File.Name, len(s.Input.Source.File.Data))
	case state.SourceText:
		a.printf("Notes:    pasted text (%d characters)\n", len(s.Input.Source.Text))
	default:
		a.println("Notes:    none")
	}
	a.printf("Prompt:   %s\n", format.TerminalText(s.Input.Prompt))
	a.printf("Summary:  %s", s.Session.Request)
	if s.Session.HasSummary() {
		a.printf(", %d -> %d characters, %s mode", s.Session.Summary.OriginalLength, s.Session.Summary.SummaryLength, s.Presenter.Mode)
	}
	a.println()
	if s.Session.Message != "" {
		a.printf("          %s\n", format.TerminalText(s.Session.Message))
	}
	a.printf("Email:    %s", s.Email.Phase)
	if s.Email.Recipients != "" {
		a.printf(", to %s", format.TerminalText(s.Email.Recipients))
	}
	a.printf(", subject %q\n", s.Email.Subject)
	if s.Email.IsOpen() && s.Email.Message != "" {
		a.printf("          %s\n", format.TerminalText(s.Email.Message))
	}
	return nil
}
