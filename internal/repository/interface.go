package repository

import (
	"context"

	"github.com/lumenstudio/backend/internal/model"
)

// DB checks that the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}

// AppointmentRepository persists appointment requests.
type AppointmentRepository interface {
	Save(ctx context.Context, appt *model.Appointment) error
	List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)
	// UpdateStatus moves the appointment from one status to another. It returns
	// ErrNotFound if the id does not exist and ErrStatusConflict if the stored
	// status is not from.
	UpdateStatus(ctx context.Context, id string, from, to model.AppointmentStatus) error
}

// CaseStudyRepository reads showcase entries.
type CaseStudyRepository interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error)
}
