// Package common defines sentinel errors shared by the client layers of the
// notes summarizer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport errors.
	ErrUnavailable = errors.New("service unavailable")

	// Input errors.
	ErrEmptyInput   = errors.New("no input provided")
	ErrFileTooLarge = errors.New("file too large")
	ErrNotAFile     = errors.New("not a regular file")

	// Config errors.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
)
