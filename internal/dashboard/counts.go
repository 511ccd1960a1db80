package dashboard

import "github.com/lumenstudio/backend/internal/model"

// StatusCounts tallies appointments by status.
type StatusCounts struct {
	Pending   int
	Confirmed int
	Cancelled int
}

// CountStatus counts the appointments whose status equals s.
func CountStatus(appts []*model.Appointment, s model.AppointmentStatus) int {
	n := 0
	for _, a := range appts {
		if a.Status == s {
			n++
		}
	}
	return n
}

// CountByStatus tallies every status in one pass.
func CountByStatus(appts []*model.Appointment) StatusCounts {
	var c StatusCounts
	for _, a := range appts {
		switch a.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusConfirmed:
			c.Confirmed++
		case model.StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}
