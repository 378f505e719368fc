package venues

import "errors"

var (
	// ErrVenueNotFound is returned when the venue does not exist
	ErrVenueNotFound = errors.New("venue not found")

	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("court not found")

	// ErrAccessDenied is returned when the caller may not manage the venue
	ErrAccessDenied = errors.New("access denied")

	// ErrVenueNotVisible is returned when a player requests an unapproved venue
	ErrVenueNotVisible = errors.New("venue is not visible")

	// ErrNotPending is returned when moderation targets a venue outside review
	ErrNotPending = errors.New("venue is not pending review")

	// ErrCommentsRequired is returned when a rejection carries no comments
	ErrCommentsRequired = errors.New("rejection comments are required")

	// ErrCourtHasBookings is returned when removal would strand future bookings
	ErrCourtHasBookings = errors.New("court has upcoming bookings")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
