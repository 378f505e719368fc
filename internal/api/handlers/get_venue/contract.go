package get_venue

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService is the venue page surface
type VenuesService interface {
	GetByID(ctx context.Context, venueID int64, caller *domain.AuthUser) (*venuesModels.VenueDetailResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
