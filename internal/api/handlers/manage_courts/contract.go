package manage_courts

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// VenuesService is the owner court management surface
type VenuesService interface {
	CreateCourt(ctx context.Context, venueID int64, req *venuesModels.CourtRequest, caller domain.AuthUser) (*venuesModels.CourtResponse, error)
	UpdateCourt(ctx context.Context, courtID int64, req *venuesModels.CourtRequest, caller domain.AuthUser) (*venuesModels.CourtResponse, error)
	DeleteCourt(ctx context.Context, courtID int64, caller domain.AuthUser) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
