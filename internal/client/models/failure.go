package models

import "fmt"

// FailureKind is the closed set of reasons an operation can fail.
type FailureKind int

const (
	// KindValidation: rejected locally, no request was made.
	KindValidation FailureKind = iota + 1
	// KindTransport: the request never got a response.
	KindTransport
	// KindRejected: the server answered 4xx.
	KindRejected
	// KindServer: the server answered 5xx.
	KindServer
	// KindUnknown: anything else, e.g. an undecodable body.
	KindUnknown
)

func (k FailureKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	case KindServer:
		return "server"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure describes one failed operation. Detail is the server-provided
// message for KindRejected/KindServer and the local message for
// KindValidation; it may be empty.
type Failure struct {
	Kind   FailureKind
	Status int
	Detail string
}

func (f *Failure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("%s failure (status %d): %s", f.Kind, f.Status, f.Detail)
	}
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Detail)
}

// Validation builds a KindValidation failure.
func Validation(msg string) *Failure {
	return &Failure{Kind: KindValidation, Detail: msg}
}
