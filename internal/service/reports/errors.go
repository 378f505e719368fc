package reports

import "errors"

var (
	// ErrReportNotFound is returned when the report does not exist
	ErrReportNotFound = errors.New("report not found")

	// ErrTargetNotFound is returned when the reported user or facility does not exist
	ErrTargetNotFound = errors.New("report target not found")

	// ErrNotOpen is returned when moderation targets an already closed report
	ErrNotOpen = errors.New("report is already closed")

	// ErrNotesRequired is returned when a resolution carries no admin notes
	ErrNotesRequired = errors.New("admin notes are required")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
