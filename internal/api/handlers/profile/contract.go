package profile

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	usersModels "github.com/quickcourt/quickcourt-backend/internal/service/users/models"
)

// UsersService is the own-profile surface
type UsersService interface {
	GetProfile(ctx context.Context, caller domain.AuthUser) (*usersModels.UserResponse, error)
	UpdateProfile(ctx context.Context, req *usersModels.UpdateProfileRequest, caller domain.AuthUser) (*usersModels.UserResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
