package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	LoadFile(ctx context.Context, path string) error
	Paste(ctx context.Context) error
	Clear(ctx context.Context) error
	Prompt(ctx context.Context, text string) error
	Generate(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Toggle(ctx context.Context) error
	HTML(ctx context.Context) error
	Share(ctx context.Context) error
	To(ctx context.Context, recipients string) error
	Subject(ctx context.Context, subject string) error
	Send(ctx context.Context) error
	Cancel(ctx context.Context) error
	Copy(ctx context.Context) error
	Status(ctx context.Context) error
}

const helpText = `Available commands:
  file <path>      load meeting notes from a .txt file
  paste            paste meeting notes (empty line to finish)
  clear            clear pasted notes
  prompt [text]    show or change the summarization prompt
  generate         summarize the current notes
  show             print the summary
  edit             replace the summary text (edit mode only)
  toggle           switch between edit and preview mode
  html             print the rendered summary (preview mode only)
  share            open or close the email dialog
  to <a, b, ...>   set email recipients
  subject <text>   set the email subject
  send             send the summary by email
  cancel | esc     close the email dialog
  copy             copy the summary to the clipboard
  status           show the current state
  exit | quit      leave the program`

// runREPL starts a simple read–eval–print loop for the summarizer CLI.
//
// It writes the prompt (with the status from statusFn) to w, reads a line
// from reader, takes the first token as the command and the
// rest of the line as its argument, and dispatches to methods on a. Commands
// that need more input read it from the same reader. The loop exits on EOF,
// when ctx is canceled or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "notes%s> ", prefixed(statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch strings.ToLower(cmd) {
		case "help", "?":
			printlnFn(helpText)
		case "file":
			if arg == "" {
				printlnFn("Usage: file <path>")
				continue
			}
			cmdErr = a.LoadFile(ctx, arg)
		case "paste":
			cmdErr = a.Paste(ctx)
		case "clear":
			cmdErr = a.Clear(ctx)
		case "prompt":
			cmdErr = a.Prompt(ctx, arg)
		case "generate", "gen":
			cmdErr = a.Generate(ctx)
		case "show":
			cmdErr = a.Show(ctx)
		case "edit":
			cmdErr = a.Edit(ctx)
		case "toggle", "preview":
			cmdErr = a.Toggle(ctx)
		case "html":
			cmdErr = a.HTML(ctx)
		case "share", "email":
			cmdErr = a.Share(ctx)
		case "to":
			cmdErr = a.To(ctx, arg)
		case "subject":
			cmdErr = a.Subject(ctx, arg)
		case "send":
			cmdErr = a.Send(ctx)
		case "cancel", "esc":
			cmdErr = a.Cancel(ctx)
		case "copy":
			cmdErr = a.Copy(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}

		if err != nil {
			return
		}
	}
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
