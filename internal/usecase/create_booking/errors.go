package create_booking

import "errors"

var (
	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrVenueNotFound is returned when the court's venue does not exist
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrCourtNotBookable is returned when the court is inactive or under maintenance
	ErrCourtNotBookable = errors.New("create_booking: court is not bookable")

	// ErrVenueNotApproved is returned when the venue has not passed admin review
	ErrVenueNotApproved = errors.New("create_booking: venue is not approved")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds the advance booking window
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidDuration is returned when the duration is outside the allowed range
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrOutsideOperatingHours is returned when the window leaves the court's open hours
	ErrOutsideOperatingHours = errors.New("create_booking: outside court operating hours")

	// ErrSlotNotAvailable is returned when an hour in the window is already booked
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotBlocked is returned when an hour in the window carries an owner block
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
