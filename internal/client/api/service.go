package api

import (
	"context"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
)

// Service is the remote summarizer backend.
type Service interface {
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResponse, error)
	SendEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResponse, error)
}
