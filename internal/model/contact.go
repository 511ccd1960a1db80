package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
// Submissions are create-only: nothing in this service updates or deletes them.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
