package manage_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	venuesService "github.com/quickcourt/quickcourt-backend/internal/service/venues"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

const (
	msgInvalidVenueID   = "invalid venue id"
	msgInvalidCourtID   = "invalid court id"
	msgInvalidBody      = "invalid request body"
	msgVenueNotFound    = "venue not found"
	msgCourtNotFound    = "court not found"
	msgAccessDenied     = "access denied"
	msgCourtHasBookings = "court has upcoming bookings"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate POST /api/v1/venues/{venueId}/courts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var body venuesModels.CourtRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /venues/{id}/courts - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateCourt(r.Context(), venueID, &body, user)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/courts - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("POST /venues/{id}/courts - Access denied: venue_id=%d, user_id=%d", venueID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /venues/{id}/courts - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/courts - Created: court_id=%d, venue_id=%d", result.ID, venueID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/courts/{courtId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var body venuesModels.CourtRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /courts/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateCourt(r.Context(), courtID, &body, user)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrCourtNotFound),
			errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /courts/{id} - Not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("PUT /courts/{id} - Access denied: court_id=%d, user_id=%d", courtID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /courts/{id} - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id} - Updated: court_id=%d, user_id=%d", courtID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/courts/{courtId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.DeleteCourt(r.Context(), courtID, user); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrCourtNotFound),
			errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /courts/{id} - Not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, venuesService.ErrAccessDenied):
			h.logger.Warn("DELETE /courts/{id} - Access denied: court_id=%d, user_id=%d", courtID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, venuesService.ErrCourtHasBookings):
			h.logger.Info("DELETE /courts/{id} - Has bookings: court_id=%d", courtID)
			handlers.RespondError(w, http.StatusConflict, msgCourtHasBookings)

		default:
			h.logger.Error("DELETE /courts/{id} - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id} - Deactivated: court_id=%d, user_id=%d", courtID, user.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
