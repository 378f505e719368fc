package block

import "errors"

var (
	// ErrBlockNotFound is returned when no block matches the query
	ErrBlockNotFound = errors.New("block.repository: block not found")

	// ErrBlockExists is returned when the slot already carries a block
	ErrBlockExists = errors.New("block.repository: slot already blocked")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
