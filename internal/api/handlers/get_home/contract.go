package get_home

import (
	"context"

	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService feeds the landing page aggregates
type VenuesService interface {
	Home(ctx context.Context) (*venuesModels.HomeResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
