package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/dmitrijs2005/notesummarizer/internal/client/api"
	"github.com/dmitrijs2005/notesummarizer/internal/client/config"
	"github.com/dmitrijs2005/notesummarizer/internal/client/controller"
	"github.com/dmitrijs2005/notesummarizer/internal/client/host"
	"github.com/dmitrijs2005/notesummarizer/internal/client/state"
	"github.com/dmitrijs2005/notesummarizer/internal/format"
	"github.com/dmitrijs2005/notesummarizer/internal/logging"
)

// Test seams.
var (
	clipboardWrite = clipboard.WriteAll
	termSize       = term.GetSize
)

const defaultWidth = 80

type App struct {
	config *config.Config
	ctrl   *controller.Controller
	page   *host.Page
	log    logging.Logger
	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer
}

// NewApp wires the controller to svc and returns an App reading commands
// from in and writing to out.
func NewApp(c *config.Config, svc api.Service, log logging.Logger, in io.Reader, out io.Writer) *App {
	page := host.NewPage(log, nil)
	a := &App{
		config: c,
		ctrl:   controller.New(c, svc, page, log),
		page:   page,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.ctrl.Subscribe(a.onState)
	return a
}

// Run starts the REPL and blocks until the user exits, the input ends or
// ctx is canceled. The controller is torn down on return.
func (a *App) Run(ctx context.Context) {
	defer a.ctrl.Close()

	a.println("Meeting Notes Summarizer (type 'help' for commands)")
	a.log.Info(ctx, "client started", "api", a.config.APIBaseURL)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader, a)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.println()
		a.println("Bye!")
	}
}

// Write sends p to the App's output, serialized with notices.
func (a *App) Write(p []byte) (int, error) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return a.out.Write(p)
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// status is the short state shown in the REPL prompt.
func (a *App) status() string {
	s := a.ctrl.Snapshot()
	var parts []string
	switch s.Input.Source.Kind {
	case state.SourceFile:
		parts = append(parts, "file:"+s.Input.Source.File.Name)
	case state.SourceText:
		parts = append(parts, "text")
	}
	if s.Session.Pending() {
		parts = append(parts, "summarizing")
	} else if s.Session.HasSummary() {
		parts = append(parts, s.Presenter.Mode.String())
	}
	if s.Email.IsOpen() {
		parts = append(parts, "email:"+s.Email.Phase.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) width() int {
	w, _, err := termSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// onState prints notices for outcomes that arrive asynchronously.
func (a *App) onState(prev, s state.State) {
	if prev.Session.Pending() && !s.Session.Pending() {
		switch s.Session.Request {
		case state.Succeeded:
			sum := s.Session.Summary
			a.printf("Summary ready (%d -> %d characters). Type 'show' to view it.\n", sum.OriginalLength, sum.SummaryLength)
			if s.Session.Warning != "" {
				a.println("Warning:", format.TerminalText(s.Session.Warning))
			}
		case state.Failed:
			a.println("Error:", format.TerminalText(s.Session.Message))
		}
	}

	if prev.Email.Sending() && !s.Email.Sending() && s.Email.Message != "" {
		a.println(format.TerminalText(s.Email.Message))
	}

	switch {
	case !prev.Email.IsOpen() && s.Email.IsOpen():
		a.println("Email dialog opened. Set recipients with 'to', then 'send'.")
	case prev.Email.IsOpen() && !s.Email.IsOpen():
		a.println("Email dialog closed.")
	}
}
