// Package services holds the reservation core: the schedule directory,
// the table registry, the reservation ledger and the availability
// engine that ties them together. Controllers translate the sentinel
// errors declared here into HTTP responses.
package services

import "errors"

// ErrNotFound is returned when a referenced entity does not exist,
// including a weekday with no schedule entry (the restaurant is closed
// that day).
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create violates a uniqueness rule:
// duplicate table label, duplicate weekday schedule, or a second
// active reservation for the same (table, date, time) slot.
var ErrConflict = errors.New("conflict")

// ErrInvalidInput is returned for malformed date or time strings and
// other out-of-range request values, before any storage access.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidStatus is returned when a status transition names anything
// other than attended or cancelled. The reservation is left unchanged.
var ErrInvalidStatus = errors.New("invalid status")
