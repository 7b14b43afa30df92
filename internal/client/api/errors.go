package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDecode marks a 2xx response whose body could not be decoded.
var ErrDecode = errors.New("malformed response body")

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}
