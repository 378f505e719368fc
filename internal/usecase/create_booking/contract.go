package create_booking

import (
	"context"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/internal/integrations/paymentpage"
)

// BookingRepository is the booking store interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByCourtAndDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
}

// CourtRepository is the court store interface
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// VenueRepository is the venue store interface
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// BlockRepository is the slot block store interface
type BlockRepository interface {
	GetByCourtAndDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.SlotBlock, error)
}

// PaymentPageBuilder renders payment page links for confirmed bookings
type PaymentPageBuilder interface {
	BuildURL(params paymentpage.PaymentParams) (string, error)
}

// TransactionManager runs the availability check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
