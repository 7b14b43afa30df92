package state

import (
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Recipients is a recipient list split into syntactically valid and invalid
// addresses, in input order.
type Recipients struct {
	Valid   []string
	Invalid []string
}

// ValidateRecipients splits raw on commas, trims each entry, drops empty ones
// and classifies the rest. The check is syntactic only; deliverability is
// up to the email service.
func ValidateRecipients(raw string) Recipients {
	var r Recipients
	for _, part := range strings.Split(raw, ",") {
		addr := strings.TrimSpace(part)
		if addr == "" {
			continue
		}
		if emailRx.MatchString(addr) {
			r.Valid = append(r.Valid, addr)
		} else {
			r.Invalid = append(r.Invalid, addr)
		}
	}
	return r
}
