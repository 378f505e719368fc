package create_booking

import (
	"context"

	createBooking "github.com/quickcourt/quickcourt-backend/internal/usecase/create_booking"
)

// CreateBookingUseCase places a booking
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
