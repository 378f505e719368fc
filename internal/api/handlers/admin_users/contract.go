package admin_users

import (
	"context"

	usersModels "github.com/quickcourt/quickcourt-backend/internal/service/users/models"
)

// UsersService is the admin account management surface
type UsersService interface {
	List(ctx context.Context, req *usersModels.ListUsersRequest) (*usersModels.UserListResponse, error)
	Ban(ctx context.Context, userID int64, req *usersModels.BanUserRequest) (*usersModels.UserResponse, error)
	Unban(ctx context.Context, userID int64) (*usersModels.UserResponse, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
