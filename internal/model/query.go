package model

// SortDirection orders a listing ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Filter is an equality condition on a single column.
type Filter struct {
	Field string
	Value any
}

// ListQuery describes a select over a remote collection: optional equality
// filters, optional ordering by a named field and an optional row limit.
// A zero Limit means no limit.
type ListQuery struct {
	Filters   []Filter
	OrderBy   string
	Direction SortDirection
	Limit     int
}

// Where returns a copy of q with an additional equality filter.
func (q ListQuery) Where(field string, value any) ListQuery {
	filters := make([]Filter, 0, len(q.Filters)+1)
	filters = append(filters, q.Filters...)
	q.Filters = append(filters, Filter{Field: field, Value: value})
	return q
}
