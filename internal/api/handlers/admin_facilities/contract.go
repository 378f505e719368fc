package admin_facilities

import (
	"context"

	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService is the admin facility moderation surface
type VenuesService interface {
	ListByStatus(ctx context.Context, status string, page, limit int) (*venuesModels.VenueListResponse, error)
	Approve(ctx context.Context, venueID int64, req *venuesModels.ModerateVenueRequest) (*venuesModels.VenueResponse, error)
	Reject(ctx context.Context, venueID int64, req *venuesModels.ModerateVenueRequest) (*venuesModels.VenueResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
