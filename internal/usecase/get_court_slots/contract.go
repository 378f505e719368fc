package get_court_slots

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

// BlockRepository is the slot block store interface
type BlockRepository interface {
	GetByCourtAndDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.SlotBlock, error)
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
