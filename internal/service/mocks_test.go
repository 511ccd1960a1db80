package service

import (
	"context"

	"github.com/lumenstudio/backend/internal/events"
	"github.com/lumenstudio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository is an in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc func(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}

func (m *mockContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// mockAppointmentRepository
// ---------------------------------------------------------------------------

type mockAppointmentRepository struct {
	saveFunc         func(ctx context.Context, appt *model.Appointment) error
	listFunc         func(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)
	updateStatusFunc func(ctx context.Context, id string, from, to model.AppointmentStatus) error
}

func (m *mockAppointmentRepository) Save(ctx context.Context, appt *model.Appointment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, appt)
	}
	return nil
}

func (m *mockAppointmentRepository) List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, id string, from, to model.AppointmentStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, from, to)
	}
	return nil
}

// ---------------------------------------------------------------------------
// recordingPublisher
// ---------------------------------------------------------------------------

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}
