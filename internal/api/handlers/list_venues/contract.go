package list_venues

import (
	"context"

	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService is the venue listing surface
type VenuesService interface {
	List(ctx context.Context, req *venuesModels.ListVenuesRequest) (*venuesModels.VenueListResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
