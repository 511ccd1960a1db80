package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"

	"github.com/lumenstudio/backend/internal/dashboard"
	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/pkg/auth"
)

// PageHandler serves the server-rendered pages. Every request builds its own
// dashboard components and closes them when it returns.
type PageHandler struct {
	renderer     *dashboard.Renderer
	appointments dashboard.AppointmentStore
	contacts     dashboard.ContactSource
	caseStudies  dashboard.CaseStudySource
}

func NewPageHandler(
	renderer *dashboard.Renderer,
	appointments dashboard.AppointmentStore,
	contacts dashboard.ContactSource,
	caseStudies dashboard.CaseStudySource,
) *PageHandler {
	return &PageHandler{
		renderer:     renderer,
		appointments: appointments,
		contacts:     contacts,
		caseStudies:  caseStudies,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, toasts *dashboard.Toasts, body any) {
	data := dashboard.PageData{
		Title:     title,
		CSRFField: csrf.TemplateField(r),
		Body:      body,
	}
	if toasts != nil {
		data.Toasts = toasts.Drain()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page, data); err != nil {
		slog.Error("page render failed", "page", page, "error", err)
	}
}

// Appointments handles GET /admin/appointments.
func (h *PageHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	toasts := &dashboard.Toasts{}
	board := dashboard.NewAppointmentBoard(h.appointments, toasts)
	defer board.Close()

	board.Load(r.Context())
	h.render(w, r, http.StatusOK, dashboard.PageAppointments, "Appointments", toasts, board.View())
}

// UpdateAppointmentStatus handles POST /admin/appointments/{id}/status from
// the Confirm and Cancel forms and renders the refetched board.
func (h *PageHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	toasts := &dashboard.Toasts{}
	board := dashboard.NewAppointmentBoard(h.appointments, toasts)
	defer board.Close()

	board.Load(r.Context())

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		toasts.Notify(r.Context(), dashboard.Toast{Level: dashboard.LevelError, Message: "Unknown appointment."})
	} else {
		board.SetStatus(r.Context(), id, model.AppointmentStatus(r.PostFormValue("status")))
	}

	h.render(w, r, http.StatusOK, dashboard.PageAppointments, "Appointments", toasts, board.View())
}

// Contacts handles GET /admin/contacts.
func (h *PageHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	toasts := &dashboard.Toasts{}
	board := dashboard.NewContactBoard(h.contacts, toasts)
	defer board.Close()

	board.Load(r.Context())
	h.render(w, r, http.StatusOK, dashboard.PageContacts, "Contact submissions", toasts, board.View())
}

// CaseStudies handles GET /case-studies, or the featured section with
// ?featured=true.
func (h *PageHandler) CaseStudies(w http.ResponseWriter, r *http.Request) {
	toasts := &dashboard.Toasts{}
	var showcase *dashboard.Showcase
	if r.URL.Query().Get("featured") == "true" {
		showcase = dashboard.NewFeaturedShowcase(h.caseStudies, toasts)
	} else {
		showcase = dashboard.NewShowcase(h.caseStudies, toasts)
	}
	defer showcase.Close()

	showcase.Load(r.Context())
	h.render(w, r, http.StatusOK, dashboard.PageCaseStudies, "Case studies", toasts, showcase.View())
}

// Login renders the sign-in page.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, dashboard.LoginView{})
}

func (h *PageHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, v dashboard.LoginView) {
	h.render(w, r, status, dashboard.PageLogin, "Sign in", nil, v)
}

// AdminPage sends page requests without an admin session to the login page.
// It must run after the session and admin middleware.
func AdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAdminFromContext(r.Context()) {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
