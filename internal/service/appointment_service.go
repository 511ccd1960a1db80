package service

import (
	"context"

	"github.com/lumenstudio/backend/internal/model"
)

// AppointmentService handles booking requests and their admin review.
type AppointmentService interface {
	// Request validates and stores a new appointment in the pending state.
	Request(ctx context.Context, appt *model.Appointment) error

	// List returns appointments matching q.
	List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)

	// UpdateStatus moves a pending appointment to confirmed or cancelled.
	// Any other target returns ErrInvalidStatus; an appointment that is no
	// longer pending returns repository.ErrStatusConflict.
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
}
