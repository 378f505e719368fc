package get_booking

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingsModels "github.com/quickcourt/quickcourt-backend/internal/service/bookings/models"
)

// BookingsService is the booking read surface
type BookingsService interface {
	GetByID(ctx context.Context, id int64, caller domain.AuthUser) (*bookingsModels.BookingResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
