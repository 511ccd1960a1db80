package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lumenstudio/backend/internal/events"
	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/repository"
)

type appointmentServiceImpl struct {
	repo      repository.AppointmentRepository
	publisher events.Publisher
	now       func() time.Time
}

// NewAppointmentService creates an AppointmentService backed by the given repository.
// A nil publisher disables events.
func NewAppointmentService(repo repository.AppointmentRepository, publisher events.Publisher) AppointmentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &appointmentServiceImpl{repo: repo, publisher: publisher, now: time.Now}
}

func (s *appointmentServiceImpl) Request(ctx context.Context, appt *model.Appointment) error {
	appt.Name = strings.TrimSpace(appt.Name)
	appt.Email = strings.TrimSpace(appt.Email)
	appt.Phone = strings.TrimSpace(appt.Phone)
	appt.RequestedDate = strings.TrimSpace(appt.RequestedDate)
	appt.RequestedTime = strings.TrimSpace(appt.RequestedTime)
	appt.Message = strings.TrimSpace(appt.Message)

	if err := validateAppointment(appt); err != nil {
		return err
	}

	// 新規予約は常に pending から始まる
	now := s.now().UTC()
	appt.Status = model.StatusPending
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if err := s.repo.Save(ctx, appt); err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}

	publish(ctx, s.publisher, events.New(events.TypeAppointmentRequested, appt.ID, appt))
	return nil
}

func (s *appointmentServiceImpl) List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error) {
	return s.repo.List(ctx, q)
}

func (s *appointmentServiceImpl) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	if !model.StatusPending.CanTransitionTo(status) {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, model.StatusPending, status); err != nil {
		return fmt.Errorf("update appointment %s: %w", id, err)
	}

	publish(ctx, s.publisher, events.New(events.TypeAppointmentStatusChanged, id, events.StatusChange{
		AppointmentID: id,
		From:          string(model.StatusPending),
		To:            string(status),
	}))
	return nil
}

func validateAppointment(appt *model.Appointment) error {
	switch {
	case appt.Name == "":
		return invalid("name", "name_required")
	case tooLong(appt.Name, maxNameLength):
		return invalid("name", "name_too_long")
	case appt.Email == "":
		return invalid("email", "email_required")
	case !validEmail(appt.Email):
		return invalid("email", "email_invalid")
	case tooLong(appt.Phone, maxPhoneLength):
		return invalid("phone", "phone_too_long")
	case appt.RequestedDate == "":
		return invalid("requested_date", "date_required")
	case appt.RequestedTime == "":
		return invalid("requested_time", "time_required")
	case tooLong(appt.Message, maxMessageLength):
		return invalid("message", "message_too_long")
	}
	if _, err := time.Parse(model.DateLayout, appt.RequestedDate); err != nil {
		return invalid("requested_date", "date_invalid")
	}
	if _, err := time.Parse(model.TimeLayout, appt.RequestedTime); err != nil {
		return invalid("requested_time", "time_invalid")
	}
	return nil
}
