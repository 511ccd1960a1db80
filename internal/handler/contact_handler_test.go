package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactSubmission
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			sub.ID = "c-1"
			captured = sub
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"email":"test@example.com","name":"Alice","subject":"Hi","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a ContactSubmission, got nil")
	}
	if captured.Email != "test@example.com" || captured.Name != "Alice" || captured.Subject != "Hi" || captured.Message != "Hello!" {
		t.Errorf("unexpected submission %+v", captured)
	}
	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "c-1" {
		t.Errorf("expected id c-1, got %q", resp.ID)
	}
}

func TestContactHandler_Submit_ValidationCodes(t *testing.T) {
	for _, code := range []string{"email_required", "email_invalid", "message_required", "message_too_long"} {
		t.Run(code, func(t *testing.T) {
			mock := &mockContactService{
				submitFunc: func(context.Context, *model.ContactSubmission) error {
					return fmt.Errorf("submit: %w", &service.ValidationError{Field: "x", Code: code})
				},
			}
			h := NewContactHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), code) {
				t.Errorf("expected %s in body, got %s", code, rec.Body.String())
			}
		})
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(context.Context, *model.ContactSubmission) error {
			return errors.New("db down")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"email":"a@b.c","message":"m"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error text leaked into the response")
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_AdminList_Unauthorized(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.AdminList(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestContactHandler_AdminList_Forbidden(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.AdminList(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestContactHandler_AdminList_Success(t *testing.T) {
	var gotQuery model.ListQuery
	mock := &mockContactService{
		listFunc: func(_ context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
			gotQuery = q
			return []*model.ContactSubmission{{ID: "2"}, {ID: "1"}}, nil
		},
	}
	h := NewContactHandler(mock)

	rec := httptest.NewRecorder()
	h.AdminList(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/contacts?limit=5", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotQuery.OrderBy != "created_at" || gotQuery.Direction != model.Descending || gotQuery.Limit != 5 {
		t.Errorf("unexpected query %+v", gotQuery)
	}
	var resp adminContactsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Contacts) != 2 || resp.Contacts[0].ID != "2" {
		t.Errorf("unexpected contacts %+v", resp.Contacts)
	}
}

func TestContactHandler_AdminList_EmptyIsArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.AdminList(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)))

	if !strings.Contains(rec.Body.String(), `"contacts":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}
