package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrStatusConflict is returned when a status update targets a record whose
// current status no longer matches the expected one.
var ErrStatusConflict = errors.New("status conflict")

// ErrUnknownField is returned when a ListQuery filters or orders by a field
// the collection does not expose.
var ErrUnknownField = errors.New("unknown field")
