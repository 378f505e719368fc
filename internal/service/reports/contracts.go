package reports

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// ReportRepository is the report store interface
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, adminNotes *string) error
}

// UserRepository resolves reported user accounts
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// VenueRepository resolves reported facilities
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
