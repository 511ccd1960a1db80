package model

import (
	"fmt"
	"time"
)

// AppointmentStatus is the lifecycle marker of an appointment request.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every valid status in display order.
var AppointmentStatuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled}

// ParseAppointmentStatus converts s to an AppointmentStatus, rejecting
// anything outside the three known values.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	st := AppointmentStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid appointment status %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// CanTransitionTo reports whether an admin may move an appointment from s to next.
// Only pending appointments move, and only to confirmed or cancelled.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return s == StatusPending && next.Terminal()
}

// Date and time layouts used by the booking form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a consultation request made through the booking form.
type Appointment struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone,omitempty"`
	RequestedDate string            `json:"requested_date"` // YYYY-MM-DD
	RequestedTime string            `json:"requested_time"` // HH:MM
	Message       string            `json:"message,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
