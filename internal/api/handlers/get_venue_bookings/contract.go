package get_venue_bookings

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingsModels "github.com/quickcourt/quickcourt-backend/internal/service/bookings/models"
)

// BookingsService is the owner booking overview surface
type BookingsService interface {
	GetVenueBookings(ctx context.Context, req *bookingsModels.GetVenueBookingsRequest, caller domain.AuthUser) (*bookingsModels.BookingListResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
