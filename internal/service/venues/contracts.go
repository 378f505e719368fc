package venues

import (
	"context"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// VenueRepository is the venue store interface
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, filter domain.VenuesFilter) ([]*domain.VenueListing, error)
	PopularVenues(ctx context.Context, limit int) ([]*domain.VenueListing, error)
	PopularSports(ctx context.Context) ([]domain.SportPopularity, error)
	Update(ctx context.Context, venue *domain.Venue) error
	UpdateStatus(ctx context.Context, id int64, status domain.VenueStatus, adminComments *string) error
}

// CourtRepository is the court store interface
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetByVenueID(ctx context.Context, venueID int64, includeInactive bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Deactivate(ctx context.Context, id int64) error
}

// BookingRepository guards court removal against future bookings
type BookingRepository interface {
	HasActiveFromDate(ctx context.Context, courtID int64, from time.Time) (bool, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
