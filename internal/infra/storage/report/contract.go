package report

import (
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
)

// DBExecutor is the minimal query surface the repository needs.
// Satisfied by *sql.DB and *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
