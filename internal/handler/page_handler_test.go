package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lumenstudio/backend/internal/dashboard"
	"github.com/lumenstudio/backend/internal/model"
)

func newTestPageHandler(t *testing.T, appts *mockAppointmentService, contacts *mockContactService, studies *mockCaseStudyService) *PageHandler {
	t.Helper()
	r, err := dashboard.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if appts == nil {
		appts = &mockAppointmentService{}
	}
	if contacts == nil {
		contacts = &mockContactService{}
	}
	if studies == nil {
		studies = &mockCaseStudyService{}
	}
	return NewPageHandler(r, appts, contacts, studies)
}

func TestPageHandler_Appointments(t *testing.T) {
	appts := &mockAppointmentService{
		listFunc: func(context.Context, model.ListQuery) ([]*model.Appointment, error) {
			return []*model.Appointment{
				{ID: "a", Status: model.StatusPending},
				{ID: "b", Status: model.StatusConfirmed},
				{ID: "c", Status: model.StatusPending},
			}, nil
		},
	}
	h := newTestPageHandler(t, appts, nil, nil)

	rec := httptest.NewRecorder()
	h.Appointments(rec, httptest.NewRequest(http.MethodGet, "/admin/appointments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-count="pending">2</span>`) || !strings.Contains(body, `data-count="confirmed">1</span>`) {
		t.Errorf("unexpected badges:\n%s", body)
	}
	if strings.Contains(body, `/admin/appointments/b/status`) {
		t.Error("confirmed appointment must not have controls")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestPageHandler_Appointments_LoadFailure(t *testing.T) {
	appts := &mockAppointmentService{
		listFunc: func(context.Context, model.ListQuery) ([]*model.Appointment, error) {
			return nil, errors.New("db down")
		},
	}
	h := newTestPageHandler(t, appts, nil, nil)

	rec := httptest.NewRecorder()
	h.Appointments(rec, httptest.NewRequest(http.MethodGet, "/admin/appointments", nil))

	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body, "No appointments yet.") || !strings.Contains(body, "toast-error") {
		t.Errorf("expected empty state and error toast:\n%s", body)
	}
}

func statusForm(id, status string) *http.Request {
	form := url.Values{"status": {status}}
	req := httptest.NewRequest(http.MethodPost, "/admin/appointments/"+id+"/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", id)
	return req
}

func TestPageHandler_UpdateAppointmentStatus_Success(t *testing.T) {
	status := model.StatusPending
	listCalls := 0
	var gotStatus model.AppointmentStatus
	appts := &mockAppointmentService{
		listFunc: func(context.Context, model.ListQuery) ([]*model.Appointment, error) {
			listCalls++
			return []*model.Appointment{{ID: testApptID, Status: status}}, nil
		},
		updateStatusFunc: func(_ context.Context, _ string, s model.AppointmentStatus) error {
			gotStatus = s
			status = s
			return nil
		},
	}
	h := newTestPageHandler(t, appts, nil, nil)

	rec := httptest.NewRecorder()
	h.UpdateAppointmentStatus(rec, statusForm(testApptID, "confirmed"))

	if gotStatus != model.StatusConfirmed {
		t.Errorf("expected confirmed, got %q", gotStatus)
	}
	if listCalls != 2 {
		t.Errorf("expected a refetch after the update, got %d list calls", listCalls)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "toast-success") {
		t.Errorf("expected success toast:\n%s", body)
	}
	if strings.Contains(body, `/admin/appointments/`+testApptID+`/status`) {
		t.Error("controls still rendered after confirm")
	}
}

func TestPageHandler_UpdateAppointmentStatus_Failure(t *testing.T) {
	listCalls := 0
	appts := &mockAppointmentService{
		listFunc: func(context.Context, model.ListQuery) ([]*model.Appointment, error) {
			listCalls++
			return []*model.Appointment{{ID: testApptID, Status: model.StatusPending}}, nil
		},
		updateStatusFunc: func(context.Context, string, model.AppointmentStatus) error {
			return errors.New("db down")
		},
	}
	h := newTestPageHandler(t, appts, nil, nil)

	rec := httptest.NewRecorder()
	h.UpdateAppointmentStatus(rec, statusForm(testApptID, "cancelled"))

	if listCalls != 1 {
		t.Errorf("expected no refetch after failure, got %d list calls", listCalls)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "toast-error") {
		t.Errorf("expected error toast:\n%s", body)
	}
	if !strings.Contains(body, `/admin/appointments/`+testApptID+`/status`) {
		t.Error("pending appointment lost its controls")
	}
}

func TestPageHandler_UpdateAppointmentStatus_BadID(t *testing.T) {
	called := false
	appts := &mockAppointmentService{
		updateStatusFunc: func(context.Context, string, model.AppointmentStatus) error {
			called = true
			return nil
		},
	}
	h := newTestPageHandler(t, appts, nil, nil)

	rec := httptest.NewRecorder()
	h.UpdateAppointmentStatus(rec, statusForm("nope", "confirmed"))

	if called {
		t.Error("update must not be issued for a malformed id")
	}
	if !strings.Contains(rec.Body.String(), "Unknown appointment.") {
		t.Errorf("expected error toast, got:\n%s", rec.Body.String())
	}
}

func TestPageHandler_Contacts(t *testing.T) {
	contacts := &mockContactService{
		listFunc: func(context.Context, model.ListQuery) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{{ID: "1", Subject: "Quote request", Email: "a@example.com"}}, nil
		},
	}
	h := newTestPageHandler(t, nil, contacts, nil)

	rec := httptest.NewRecorder()
	h.Contacts(rec, httptest.NewRequest(http.MethodGet, "/admin/contacts", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Quote request") || !strings.Contains(body, `data-count="total">1</span>`) {
		t.Errorf("unexpected page:\n%s", body)
	}
}

func TestPageHandler_CaseStudies(t *testing.T) {
	var got model.ListQuery
	studies := &mockCaseStudyService{
		listFunc: func(_ context.Context, q model.ListQuery) ([]*model.CaseStudy, error) {
			got = q
			return []*model.CaseStudy{{ID: "1", Title: "Launch", Icon: "rocket"}}, nil
		},
	}
	h := newTestPageHandler(t, nil, nil, studies)

	rec := httptest.NewRecorder()
	h.CaseStudies(rec, httptest.NewRequest(http.MethodGet, "/case-studies?featured=true", nil))

	if got.Limit != dashboard.FeaturedLimit || len(got.Filters) != 1 {
		t.Errorf("unexpected query %+v", got)
	}
	if !strings.Contains(rec.Body.String(), `#icon-rocket`) {
		t.Errorf("expected rocket icon:\n%s", rec.Body.String())
	}
}

func TestAdminPage(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	AdminPage(inner).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != LoginPath {
		t.Errorf("expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	AdminPage(inner).ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", rec.Code)
	}
}
