package manage_venues

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService is the owner venue management surface
type VenuesService interface {
	Create(ctx context.Context, req *venuesModels.VenueRequest, caller domain.AuthUser) (*venuesModels.VenueResponse, error)
	Update(ctx context.Context, venueID int64, req *venuesModels.VenueRequest, caller domain.AuthUser) (*venuesModels.VenueResponse, error)
	ListOwned(ctx context.Context, caller domain.AuthUser) (*venuesModels.VenueListResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
