package get_court_slots

import "errors"

var (
	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("get_court_slots: court not found")

	// ErrCourtNotInVenue is returned when the court belongs to another venue
	ErrCourtNotInVenue = errors.New("get_court_slots: court does not belong to venue")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_court_slots: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("get_court_slots: internal error")
)
