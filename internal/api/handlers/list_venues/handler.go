package list_venues

import (
	"net/http"
	"strconv"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	venuesModels "github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

const msgInvalidQuery = "invalid query parameters"

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/venues?search=&sport=&price_min=&price_max=&sort=&page=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /venues - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /venues - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*venuesModels.ListVenuesRequest, error) {
	query := r.URL.Query()
	req := &venuesModels.ListVenuesRequest{
		Sort: query.Get("sort"),
	}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	if sport := query.Get("sport"); sport != "" {
		req.Sport = &sport
	}

	if raw := query.Get("price_min"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMin = &price
	}
	if raw := query.Get("price_max"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.PriceMax = &price
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
