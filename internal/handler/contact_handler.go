package handler

import (
	"log/slog"
	"net/http"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// Submit handles POST /api/contact.
// email and message are required; name and subject are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		if code, ok := validationCode(err); ok {
			writeError(w, http.StatusBadRequest, code)
			return
		}
		slog.Error("contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{ID: sub.ID})
}

// adminContactsResponse is the JSON response for GET /api/admin/contacts.
type adminContactsResponse struct {
	Contacts []*model.ContactSubmission `json:"contacts"`
}

// AdminList handles GET /api/admin/contacts (admin only), newest first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	contacts, err := h.contactService.List(r.Context(), service.RecentContactsQuery(listLimit(r, 100)))
	if err != nil {
		slog.Error("contact list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, adminContactsResponse{Contacts: contacts})
}
