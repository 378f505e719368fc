package create_report

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	reportsModels "github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
)

// ReportsService is the report filing surface
type ReportsService interface {
	Create(ctx context.Context, req *reportsModels.CreateReportRequest, caller domain.AuthUser) (*reportsModels.ReportResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
