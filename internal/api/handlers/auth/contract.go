package auth

import (
	"context"

	usersModels "github.com/quickcourt/quickcourt-backend/internal/service/users/models"
)

// UsersService is the account service surface used by the auth endpoints
type UsersService interface {
	Signup(ctx context.Context, req *usersModels.SignupRequest) (*usersModels.SignupResponse, error)
	VerifyOTP(ctx context.Context, req *usersModels.VerifyOTPRequest) (*usersModels.UserResponse, error)
	Login(ctx context.Context, req *usersModels.LoginRequest) (*usersModels.LoginResponse, error)
	ResendOTP(ctx context.Context, email string) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
