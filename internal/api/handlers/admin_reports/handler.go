package admin_reports

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	reportsService "github.com/quickcourt/quickcourt-backend/internal/service/reports"
	reportsModels "github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

const (
	msgInvalidBody    = "invalid request body"
	msgReportNotFound = "report not found"
	msgNotOpen        = "report is already closed"
	msgNotesRequired  = "admin notes are required when resolving"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleList GET /api/v1/admin/reports?status=&priority=&page=&limit=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &reportsModels.ListReportsRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if priority := query.Get("priority"); priority != "" {
		req.Priority = ptr.Ptr(priority)
	}
	req.Page, _ = strconv.Atoi(query.Get("page"))
	req.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/reports - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleResolve PATCH /api/v1/admin/reports/{reportId}/resolve
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.service.Resolve, "resolve")
}

// HandleDismiss PATCH /api/v1/admin/reports/{reportId}/dismiss
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.service.Dismiss, "dismiss")
}

func (h *Handler) close(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, reportID string, req *reportsModels.CloseReportRequest) (*reportsModels.ReportResponse, error),
	verb string,
) {
	reportID := mux.Vars(r)["reportId"]

	// Body is optional on dismiss
	var body reportsModels.CloseReportRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/reports/{id}/%s - Invalid body: %v", verb, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := action(r.Context(), reportID, &body)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrReportNotFound):
			h.logger.Warn("PATCH /admin/reports/{id}/%s - Not found: report_id=%s", verb, reportID)
			handlers.RespondNotFound(w, msgReportNotFound)

		case errors.Is(err, reportsService.ErrNotOpen):
			h.logger.Info("PATCH /admin/reports/{id}/%s - Already closed: report_id=%s", verb, reportID)
			handlers.RespondError(w, http.StatusConflict, msgNotOpen)

		case errors.Is(err, reportsService.ErrNotesRequired):
			handlers.RespondBadRequest(w, msgNotesRequired)

		case errors.Is(err, reportsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/reports/{id}/%s - Failed: report_id=%s, error=%v", verb, reportID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reports/{id}/%s - Done: report_id=%s, status=%s", verb, reportID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
