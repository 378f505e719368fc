package get_home

import (
	"net/http"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/home
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Home(r.Context())
	if err != nil {
		h.logger.Error("GET /home - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
