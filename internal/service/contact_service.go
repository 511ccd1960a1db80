package service

import (
	"context"

	"github.com/lumenstudio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new submission. sub.ID and sub.CreatedAt
	// are populated by the implementation.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns contact submissions matching q.
	List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}
