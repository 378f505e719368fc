package create_block

import "errors"

var (
	// ErrCourtNotFound is returned when the court does not exist
	ErrCourtNotFound = errors.New("create_block: court not found")

	// ErrNotCourtOwner is returned when the caller does not own the court's venue
	ErrNotCourtOwner = errors.New("create_block: caller does not own this court")

	// ErrHourBooked is returned when an active booking already covers the hour.
	// The owner must cancel the booking first; a block never evicts a player.
	ErrHourBooked = errors.New("create_block: hour is covered by an active booking")

	// ErrAlreadyBlocked is returned when the slot already carries a block
	ErrAlreadyBlocked = errors.New("create_block: slot is already blocked")

	// ErrOutsideOperatingHours is returned when the hour is outside the court's window
	ErrOutsideOperatingHours = errors.New("create_block: hour outside court operating hours")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_block: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_block: internal error")
)
