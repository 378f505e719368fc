package users

import (
	"context"
	"database/sql"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// UserRepository is the user store interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter domain.UsersFilter) ([]*domain.User, error)
	Count(ctx context.Context, filter domain.UsersFilter) (int, error)
	SetVerified(ctx context.Context, id int64) error
	SetOTP(ctx context.Context, id int64, code string, expiresAt sql.NullTime) error
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus, banReason *string) error
	UpdateProfile(ctx context.Context, id int64, fullName string, avatarURL *string) error
	TouchLastActive(ctx context.Context, id int64) error
}

// BookingStatsRepository aggregates booking history for the admin listing
type BookingStatsRepository interface {
	StatsByUser(ctx context.Context, userID int64) (domain.UserBookingStats, error)
}

// TokenManager issues access tokens after login
type TokenManager interface {
	CreateAccessToken(userID int64, role string, email string) (string, error)
}

// TimeProvider returns the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
