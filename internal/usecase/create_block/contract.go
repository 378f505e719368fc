package create_block

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// BookingRepository is the booking store interface
type BookingRepository interface {
	GetByCourtAndDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.Booking, error)
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
	Create(ctx context.Context, block *domain.SlotBlock) (*domain.SlotBlock, error)
}

// TransactionManager runs the booking check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
