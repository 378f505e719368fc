package blocks

import "errors"

var (
	// ErrBlockNotFound is returned when the block does not exist
	ErrBlockNotFound = errors.New("block not found")

	// ErrAccessDenied is returned when the caller does not own the court's venue
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
