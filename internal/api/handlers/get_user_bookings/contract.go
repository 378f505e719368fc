package get_user_bookings

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingsModels "github.com/quickcourt/quickcourt-backend/internal/service/bookings/models"
)

// BookingsService is the booking history surface
type BookingsService interface {
	GetUserBookings(ctx context.Context, req *bookingsModels.GetUserBookingsRequest, caller domain.AuthUser) (*bookingsModels.BookingListResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
