// Package events publishes domain events for downstream consumers such as a
// reminder or CRM sync service.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by this service.
const (
	TypeContactSubmitted         = "contact.submitted"
	TypeAppointmentRequested     = "appointment.requested"
	TypeAppointmentStatusChanged = "appointment.status_changed"
)

// Event is a single domain event. Key is the id of the record it concerns and
// is used as the partition key.
type Event struct {
	ID         string
	Type       string
	Key        string
	OccurredAt time.Time
	Data       any
}

// New builds an Event with a fresh id and the current time.
func New(eventType, key string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// StatusChange is the payload of TypeAppointmentStatusChanged.
type StatusChange struct {
	AppointmentID string `json:"appointment_id"`
	From          string `json:"from"`
	To            string `json:"to"`
}
