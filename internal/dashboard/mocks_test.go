package dashboard

import (
	"context"
	"time"

	"github.com/lumenstudio/backend/internal/model"
)

type mockAppointmentStore struct {
	ListFunc         func(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)
	UpdateStatusFunc func(ctx context.Context, id string, status model.AppointmentStatus) error

	listCalls   int
	updateCalls int
}

func (m *mockAppointmentStore) List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error) {
	m.listCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockAppointmentStore) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	m.updateCalls++
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// memoryAppointments is a store whose List reflects earlier updates.
type memoryAppointments struct {
	items []*model.Appointment
}

func (m *memoryAppointments) List(_ context.Context, _ model.ListQuery) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, len(m.items))
	for i, a := range m.items {
		cp := *a
		out[i] = &cp
	}
	return out, nil
}

func (m *memoryAppointments) UpdateStatus(_ context.Context, id string, status model.AppointmentStatus) error {
	for _, a := range m.items {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errNotFound
}

type mockContactSource struct {
	ListFunc func(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}

func (m *mockContactSource) List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
	return m.ListFunc(ctx, q)
}

type mockCaseStudySource struct {
	ListFunc func(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error)
}

func (m *mockCaseStudySource) List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error) {
	return m.ListFunc(ctx, q)
}

func appt(id string, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:            id,
		Name:          "Guest " + id,
		Email:         id + "@example.com",
		RequestedDate: "2026-11-02",
		RequestedTime: "10:30",
		Status:        status,
		CreatedAt:     time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}
