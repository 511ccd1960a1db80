package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/repository"
	"github.com/lumenstudio/backend/internal/service"
)

// AppointmentHandler handles booking requests and the admin status API.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

type appointmentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	RequestedDate string `json:"requested_date"`
	RequestedTime string `json:"requested_time"`
	Message       string `json:"message"`
}

// Request handles POST /api/appointments. The new appointment is always pending.
func (h *AppointmentHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	appt := &model.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		RequestedDate: req.RequestedDate,
		RequestedTime: req.RequestedTime,
		Message:       req.Message,
	}
	if err := h.appointmentService.Request(r.Context(), appt); err != nil {
		if code, ok := validationCode(err); ok {
			writeError(w, http.StatusBadRequest, code)
			return
		}
		slog.Error("appointment request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "request_failed")
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

type adminAppointmentsResponse struct {
	Appointments []*model.Appointment `json:"appointments"`
}

// AdminList handles GET /api/admin/appointments (admin only), newest first,
// every status.
func (h *AppointmentHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	appts, err := h.appointmentService.List(r.Context(), service.RecentAppointmentsQuery(listLimit(r, 100)))
	if err != nil {
		slog.Error("appointment list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if appts == nil {
		appts = []*model.Appointment{}
	}
	writeJSON(w, http.StatusOK, adminAppointmentsResponse{Appointments: appts})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/appointments/{id}/status.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.appointmentService.UpdateStatus(r.Context(), id, model.AppointmentStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, repository.ErrStatusConflict):
		writeError(w, http.StatusConflict, "status_conflict")
	default:
		slog.Error("appointment status update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update_failed")
	}
}
