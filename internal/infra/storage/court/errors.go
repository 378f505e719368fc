package court

import "errors"

var (
	// ErrCourtNotFound is returned when no court matches the query
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("court.repository: failed to scan row")
)
