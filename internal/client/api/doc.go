// Package api talks to the meeting-notes summarizer backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see Service) with the two operations the
//     client needs: Summarize and SendEmail.
//  2. A concrete HTTP implementation (see HTTPClient): a multipart POST to
//     /summarize and a JSON POST to /email, both relative to a base URL.
//  3. Classify, the single place where transport errors become
//     models.Failure values with a closed set of kinds.
//
// # Error Handling
//
// Non-2xx responses are returned as *StatusError carrying the status code and
// the decoded {"error": ...} message. Requests that got no response wrap
// common.ErrUnavailable. Callers should not inspect errors beyond Classify.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines.
package api
