package get_court_slots

import (
	"context"

	getCourtSlots "github.com/quickcourt/quickcourt-backend/internal/usecase/get_court_slots"
)

// GetCourtSlotsUseCase computes the slot grid
type GetCourtSlotsUseCase interface {
	Execute(ctx context.Context, req *getCourtSlots.Request) (*getCourtSlots.Response, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
