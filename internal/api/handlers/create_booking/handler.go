package create_booking

import (
	"errors"
	"net/http"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	createBooking "github.com/quickcourt/quickcourt-backend/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "invalid request body"
	msgCourtNotFound    = "court not found"
	msgCourtNotBookable = "court is not bookable"
	msgSlotTaken        = "slot is not available"
	msgSlotBlocked      = "slot is blocked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var body CreateBookingRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToUseCaseRequest(user.ID)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCourtNotFound),
			errors.Is(err, createBooking.ErrVenueNotFound),
			errors.Is(err, createBooking.ErrVenueNotApproved):
			// Unapproved venues stay invisible to players
			h.logger.Warn("POST /bookings - Court not found: court_id=%d, error=%v", body.CourtID, err)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Info("POST /bookings - Slot taken: court_id=%d, date=%s, start=%s",
				body.CourtID, body.Date, body.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Info("POST /bookings - Slot blocked: court_id=%d, date=%s, start=%s",
				body.CourtID, body.Date, body.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrCourtNotBookable):
			handlers.RespondError(w, http.StatusConflict, msgCourtNotBookable)

		case errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrDateTooFarInFuture),
			errors.Is(err, createBooking.ErrInvalidDuration),
			errors.Is(err, createBooking.ErrOutsideOperatingHours),
			errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%d, court_id=%d, error=%v",
				user.ID, body.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, user.ID, result.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
