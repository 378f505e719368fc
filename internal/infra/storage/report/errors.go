package report

import "errors"

var (
	// ErrReportNotFound is returned when no report matches the query
	ErrReportNotFound = errors.New("report.repository: report not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("report.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("report.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("report.repository: failed to scan row")
)
