// Package cli provides the interactive meeting notes summarizer client.
//
// It wires configuration, the summarizer API client and the state
// controller into a REPL. Typical flow: load or paste notes, generate a
// summary, review or edit it, then share it by email.
//
// Key features:
//   - Notes from a .txt file or pasted text, with an editable prompt
//   - Summary shown raw for editing or rendered for preview
//   - Email dialog with recipient validation and auto-dismissed results
//   - Copy to clipboard
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
