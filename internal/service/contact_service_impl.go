package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lumenstudio/backend/internal/events"
	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo      repository.ContactRepository
	publisher events.Publisher
}

// NewContactService creates a ContactService backed by the given repository.
// A nil publisher disables events.
func NewContactService(repo repository.ContactRepository, publisher events.Publisher) ContactService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &contactServiceImpl{repo: repo, publisher: publisher}
}

// Submit trims and validates sub, stamps CreatedAt and persists it.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := validateContact(sub); err != nil {
		return err
	}

	sub.CreatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, sub); err != nil {
		return fmt.Errorf("save contact submission: %w", err)
	}

	publish(ctx, s.publisher, events.New(events.TypeContactSubmitted, sub.ID, sub))
	return nil
}

// List returns contact submissions matching q.
func (s *contactServiceImpl) List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, q)
}

func validateContact(sub *model.ContactSubmission) error {
	switch {
	case sub.Email == "":
		return invalid("email", "email_required")
	case !validEmail(sub.Email):
		return invalid("email", "email_invalid")
	case sub.Message == "":
		return invalid("message", "message_required")
	case tooLong(sub.Message, maxMessageLength):
		return invalid("message", "message_too_long")
	case tooLong(sub.Name, maxNameLength):
		return invalid("name", "name_too_long")
	case tooLong(sub.Subject, maxSubjectLength):
		return invalid("subject", "subject_too_long")
	}
	return nil
}

// publish delivers e and logs failures; events never fail the request.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if err := p.Publish(ctx, e); err != nil {
		slog.Warn("event publish failed", "event_type", e.Type, "key", e.Key, "error", err)
	}
}
