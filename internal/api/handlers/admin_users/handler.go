package admin_users

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	usersService "github.com/quickcourt/quickcourt-backend/internal/service/users"
	usersModels "github.com/quickcourt/quickcourt-backend/internal/service/users/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

const (
	msgInvalidUserID  = "invalid user id"
	msgInvalidBody    = "invalid request body"
	msgUserNotFound   = "user not found"
	msgReasonRequired = "ban reason is required"
	msgCannotBanAdmin = "admin accounts cannot be banned"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleList GET /api/v1/admin/users?role=&status=&search=&page=&limit=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &usersModels.ListUsersRequest{}
	if role := query.Get("role"); role != "" {
		req.Role = ptr.Ptr(role)
	}
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if search := query.Get("search"); search != "" {
		req.Search = ptr.Ptr(search)
	}
	req.Page, _ = strconv.Atoi(query.Get("page"))
	req.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/users - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBan PATCH /api/v1/admin/users/{userId}/ban
func (h *Handler) HandleBan(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var body usersModels.BanUserRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/users/{id}/ban - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Ban(r.Context(), userID, &body)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PATCH /admin/users/{id}/ban - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrReasonRequired):
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, usersService.ErrCannotBanAdmin):
			h.logger.Warn("PATCH /admin/users/{id}/ban - Target is admin: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgCannotBanAdmin)

		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/users/{id}/ban - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/users/{id}/ban - Banned: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUnban PATCH /api/v1/admin/users/{userId}/unban
func (h *Handler) HandleUnban(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.Unban(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PATCH /admin/users/{id}/unban - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("PATCH /admin/users/{id}/unban - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/users/{id}/unban - Unbanned: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
