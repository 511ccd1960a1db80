package service

import "github.com/lumenstudio/backend/internal/model"

// Fixed queries shared by the JSON API and the dashboard views.

// RecentContactsQuery lists contact submissions newest first.
func RecentContactsQuery(limit int) model.ListQuery {
	return model.ListQuery{OrderBy: "created_at", Direction: model.Descending, Limit: limit}
}

// RecentAppointmentsQuery lists every appointment newest first, whatever its status.
func RecentAppointmentsQuery(limit int) model.ListQuery {
	return model.ListQuery{OrderBy: "created_at", Direction: model.Descending, Limit: limit}
}

// FeaturedCaseStudiesQuery lists featured case studies in display order.
func FeaturedCaseStudiesQuery(limit int) model.ListQuery {
	return CaseStudiesQuery(limit).Where("featured", true)
}

// CaseStudiesQuery lists all case studies in display order.
func CaseStudiesQuery(limit int) model.ListQuery {
	return model.ListQuery{OrderBy: "display_order", Direction: model.Ascending, Limit: limit}
}
