package get_court_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	getCourtSlots "github.com/quickcourt/quickcourt-backend/internal/usecase/get_court_slots"
)

const (
	msgInvalidVenueID = "invalid venue id"
	msgInvalidCourtID = "invalid court id"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgCourtNotFound  = "court not found"
)

type Handler struct {
	useCase GetCourtSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtSlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/venues/{venueId}/courts/{courtId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/courts/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCourtSlots.Request{
		VenueID: venueID,
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCourtSlots.ErrCourtNotFound),
			errors.Is(err, getCourtSlots.ErrCourtNotInVenue):
			h.logger.Warn("GET slots - Court not found: venue_id=%d, court_id=%d", venueID, courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getCourtSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET slots - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
