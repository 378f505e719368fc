package admin_reports

import (
	"context"

	reportsModels "github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
)

// ReportsService is the admin report queue surface
type ReportsService interface {
	List(ctx context.Context, req *reportsModels.ListReportsRequest) (*reportsModels.ReportListResponse, error)
	Resolve(ctx context.Context, reportID string, req *reportsModels.CloseReportRequest) (*reportsModels.ReportResponse, error)
	Dismiss(ctx context.Context, reportID string, req *reportsModels.CloseReportRequest) (*reportsModels.ReportResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
