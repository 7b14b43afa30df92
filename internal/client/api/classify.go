package api

import (
	"errors"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
	"github.com/dmitrijs2005/notesummarizer/internal/common"
)

// Classify maps any error returned by a Service into a Failure. It is the
// only translation from transport errors to failure kinds. A nil error
// yields nil.
func Classify(err error) *models.Failure {
	if err == nil {
		return nil
	}

	var f *models.Failure
	if errors.As(err, &f) {
		return f
	}

	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.Status >= 400 && se.Status < 500:
			return &models.Failure{Kind: models.KindRejected, Status: se.Status, Detail: se.Message}
		case se.Status >= 500:
			return &models.Failure{Kind: models.KindServer, Status: se.Status, Detail: se.Message}
		default:
			return &models.Failure{Kind: models.KindUnknown, Status: se.Status, Detail: se.Message}
		}
	}

	if errors.Is(err, common.ErrUnavailable) {
		return &models.Failure{Kind: models.KindTransport}
	}

	return &models.Failure{Kind: models.KindUnknown}
}
