package admin_facilities

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	venuesService "github.com/quickcourt/quickcourt-backend/internal/service/venues"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "invalid venue id"
	msgInvalidBody        = "invalid request body"
	msgVenueNotFound      = "venue not found"
	msgNotPending         = "venue is not pending review"
	msgCommentsRequired   = "comments are required when rejecting"
	defaultFacilityStatus = "pending"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleList GET /api/v1/admin/facilities?status=&page=&limit=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := query.Get("status")
	if status == "" {
		status = defaultFacilityStatus
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}

	result, err := h.service.ListByStatus(r.Context(), status, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/facilities - Failed: status=%s, error=%v", status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleApprove PATCH /api/v1/admin/facilities/{venueId}/approve
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.service.Approve, "approve")
}

// HandleReject PATCH /api/v1/admin/facilities/{venueId}/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.service.Reject, "reject")
}

func (h *Handler) moderate(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, venueID int64, req *venuesModels.ModerateVenueRequest) (*venuesModels.VenueResponse, error),
	verb string,
) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Body is optional on approve
	var body venuesModels.ModerateVenueRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/facilities/{id}/%s - Invalid body: %v", verb, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := action(r.Context(), venueID, &body)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PATCH /admin/facilities/{id}/%s - Not found: venue_id=%d", verb, venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrNotPending):
			h.logger.Info("PATCH /admin/facilities/{id}/%s - Not pending: venue_id=%d", verb, venueID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		case errors.Is(err, venuesService.ErrCommentsRequired):
			handlers.RespondBadRequest(w, msgCommentsRequired)

		case errors.Is(err, venuesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/facilities/{id}/%s - Failed: venue_id=%d, error=%v", verb, venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/facilities/{id}/%s - Done: venue_id=%d, status=%s", verb, venueID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
