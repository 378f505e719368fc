package create_report

import (
	"errors"
	"net/http"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	reportsService "github.com/quickcourt/quickcourt-backend/internal/service/reports"
	reportsModels "github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
)

const (
	msgInvalidBody    = "invalid request body"
	msgTargetNotFound = "report target not found"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/reports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var body reportsModels.CreateReportRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /reports - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &body, user)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrTargetNotFound):
			h.logger.Warn("POST /reports - Target not found: type=%s, id=%d", body.TargetType, body.TargetID)
			handlers.RespondNotFound(w, msgTargetNotFound)

		case errors.Is(err, reportsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reports - Failed: reporter=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reports - Created: report_id=%s, reporter=%d", result.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
