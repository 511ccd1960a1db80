package handler

import (
	"context"
	"net/http"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/pkg/auth"
)

type mockContactService struct {
	submitFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc   func(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

type mockAppointmentService struct {
	requestFunc      func(ctx context.Context, appt *model.Appointment) error
	listFunc         func(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error)
	updateStatusFunc func(ctx context.Context, id string, status model.AppointmentStatus) error
}

func (m *mockAppointmentService) Request(ctx context.Context, appt *model.Appointment) error {
	if m.requestFunc != nil {
		return m.requestFunc(ctx, appt)
	}
	return nil
}

func (m *mockAppointmentService) List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockAppointmentService) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockCaseStudyService struct {
	listFunc func(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error)
}

func (m *mockCaseStudyService) List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

type mockAdminAuthService struct {
	loginFunc func(email, password string) (string, error)
}

func (m *mockAdminAuthService) Login(email, password string) (string, error) {
	return m.loginFunc(email, password)
}

// asAdmin returns req with an authenticated admin in its context.
func asAdmin(req *http.Request) *http.Request {
	ctx := auth.WithUserID(req.Context(), "admin@example.com")
	ctx = auth.WithIsAdmin(ctx, true)
	return req.WithContext(ctx)
}

// asUser returns req with an authenticated non-admin user.
func asUser(req *http.Request) *http.Request {
	return req.WithContext(auth.WithUserID(req.Context(), "someone@example.com"))
}
