package manage_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	"github.com/quickcourt/quickcourt-backend/internal/api/middleware"
	blocksService "github.com/quickcourt/quickcourt-backend/internal/service/blocks"
	createBlock "github.com/quickcourt/quickcourt-backend/internal/usecase/create_block"
)

const (
	msgInvalidCourtID = "invalid court id"
	msgInvalidBlockID = "invalid block id"
	msgInvalidBody    = "invalid request body"
	msgCourtNotFound  = "court not found"
	msgBlockNotFound  = "block not found"
	msgAccessDenied   = "access denied"
	msgHourBooked     = "hour is covered by an active booking"
	msgAlreadyBlocked = "slot is already blocked"
)

type Handler struct {
	useCase CreateBlockUseCase
	service BlocksService
	logger  Logger
}

func NewHandler(useCase CreateBlockUseCase, service BlocksService, logger Logger) *Handler {
	return &Handler{useCase: useCase, service: service, logger: logger}
}

// HandleCreate POST /api/v1/courts/{courtId}/blocks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var body CreateBlockRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /courts/{id}/blocks - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToUseCaseRequest(user.ID, courtID)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBlock.ErrCourtNotFound):
			h.logger.Warn("POST /courts/{id}/blocks - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBlock.ErrNotCourtOwner):
			h.logger.Warn("POST /courts/{id}/blocks - Not owner: court_id=%d, user_id=%d", courtID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createBlock.ErrHourBooked):
			h.logger.Info("POST /courts/{id}/blocks - Hour booked: court_id=%d, date=%s, start=%s",
				courtID, body.Date, body.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgHourBooked)

		case errors.Is(err, createBlock.ErrAlreadyBlocked):
			h.logger.Info("POST /courts/{id}/blocks - Already blocked: court_id=%d, date=%s, start=%s",
				courtID, body.Date, body.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

		case errors.Is(err, createBlock.ErrOutsideOperatingHours),
			errors.Is(err, createBlock.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /courts/{id}/blocks - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/{id}/blocks - Created: block_id=%d, court_id=%d", result.ID, courtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleDelete DELETE /api/v1/blocks/{blockId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.AuthUserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	blockID, err := strconv.ParseInt(mux.Vars(r)["blockId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID, user); err != nil {
		switch {
		case errors.Is(err, blocksService.ErrBlockNotFound):
			h.logger.Warn("DELETE /blocks/{id} - Not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, blocksService.ErrAccessDenied):
			h.logger.Warn("DELETE /blocks/{id} - Access denied: block_id=%d, user_id=%d", blockID, user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Deleted: block_id=%d, user_id=%d", blockID, user.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
