package get_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	venuesService "github.com/quickcourt/quickcourt-backend/internal/service/venues"
)

const (
	msgInvalidVenueID = "invalid venue id"
	msgVenueNotFound  = "venue not found"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Optional auth: owners and admins see unapproved venues
	var caller *domain.AuthUser
	if user, ok := middleware.AuthUserFromContext(r.Context()); ok {
		caller = &user
	}

	result, err := h.service.GetByID(r.Context(), venueID, caller)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound),
			errors.Is(err, venuesService.ErrVenueNotVisible):
			// Hidden venues 404 rather than 403 to avoid leaking their existence
			h.logger.Warn("GET /venues/{id} - Venue not visible: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id} - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
