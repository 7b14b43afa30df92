package models

import "encoding/json"

// EmailRequest is the payload of POST /email. OriginalNotes is only set when
// the notes were pasted as text.
type EmailRequest struct {
	To            []string `json:"to"`
	Subject       string   `json:"subject"`
	Summary       string   `json:"summary"`
	OriginalNotes string   `json:"originalNotes,omitempty"`
}

// EmailResponse is the 2xx body of POST /email. When the server has no mail
// backend configured it answers Success=false with the message it would
// have sent in MockEmail.
type EmailResponse struct {
	Success   bool            `json:"success"`
	MockEmail json.RawMessage `json:"mockEmail,omitempty"`
}

// Degraded reports whether the response is the unconfigured-backend answer.
func (r *EmailResponse) Degraded() bool {
	return !r.Success && len(r.MockEmail) > 0 && string(r.MockEmail) != "null"
}
