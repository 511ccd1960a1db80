package model

import "time"

// CaseStudy is a showcase entry rendered on the public site.
type CaseStudy struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Client       string    `json:"client"`
	Summary      string    `json:"summary"`
	Body         string    `json:"body"` // markdown
	ImageURL     string    `json:"image_url,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	Tags         []string  `json:"tags"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
