package domain

import (
	"errors"
	"time"
)

// Role is the closed set of QuickCourt roles. The API router dispatches on
// it once, at the route-group boundary; pages never re-check roles.
type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "facility_owner"
	RoleAdmin  Role = "admin"
)

// ErrUnknownRole is returned when a role string is outside the closed set
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role string coming from the API or a token
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePlayer, RoleOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// UserStatus represents the moderation state of an account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusBanned    UserStatus = "banned"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a registered account of any role
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    *string
	Role         Role
	Status       UserStatus
	IsVerified   bool

	// OTP state for the signup verification step
	OTPCode      *string
	OTPExpiresAt *time.Time

	BanReason    *string
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogIn returns true if the account may start a session
func (u *User) CanLogIn() bool {
	return u.Status == UserStatusActive && u.IsVerified
}

// IsBanned returns true if the account is banned or suspended
func (u *User) IsBanned() bool {
	return u.Status == UserStatusBanned || u.Status == UserStatusSuspended
}

// UsersFilter narrows admin user listings
type UsersFilter struct {
	Role   *Role
	Status *UserStatus
	Search *string // matches full name or email
	Page   int
	Limit  int
}

// AuthUser is the authenticated identity the API middleware injects into the
// request context. This is the application-state container: login populates
// it (via the token), logout discards the token.
type AuthUser struct {
	ID    int64
	Role  Role
	Email string
}
