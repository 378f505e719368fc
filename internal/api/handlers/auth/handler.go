package auth

import (
	"errors"
	"net/http"

	"github.com/quickcourt/quickcourt-backend/internal/api/handlers"
	usersService "github.com/quickcourt/quickcourt-backend/internal/service/users"
	usersModels "github.com/quickcourt/quickcourt-backend/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "email is already registered"
	msgInvalidCredentials = "invalid email or password"
	msgNotVerified        = "account is not verified"
	msgBanned             = "account is banned"
	msgInvalidOTP         = "invalid or expired verification code"
	msgAlreadyVerified    = "account is already verified"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleSignup POST /api/v1/auth/signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req usersModels.SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("POST /auth/signup - Email taken: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/signup - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - Account created: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleVerifyOTP POST /api/v1/auth/verify-otp
func (h *Handler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req usersModels.VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verify-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrInvalidOTP):
			h.logger.Warn("POST /auth/verify-otp - Invalid code for %s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidOTP)

		case errors.Is(err, usersService.ErrAlreadyVerified):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyVerified)

		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/verify-otp - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/verify-otp - Account verified: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleLogin POST /api/v1/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req usersModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for %s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, usersService.ErrNotVerified):
			handlers.RespondForbidden(w, msgNotVerified)

		case errors.Is(err, usersService.ErrBanned):
			handlers.RespondForbidden(w, msgBanned)

		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleResendOTP POST /api/v1/auth/resend-otp
func (h *Handler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/resend-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResendOTP(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrAlreadyVerified):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyVerified)

		default:
			h.logger.Error("POST /auth/resend-otp - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
