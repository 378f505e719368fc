package models

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// Request models

// SignupRequest registers a new account
type SignupRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FullName  string  `json:"fullName"`
	Role      string  `json:"role"` // player or facility_owner
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// VerifyOTPRequest confirms the signup verification code
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest starts a session
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest edits the caller's profile
type UpdateProfileRequest struct {
	FullName  string  `json:"fullName"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ListUsersRequest is the admin user listing query
type ListUsersRequest struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
	Search *string `json:"search,omitempty"`
	Page   int     `json:"page,omitempty"`
	Limit  int     `json:"limit,omitempty"`
}

// BanUserRequest bans an account
type BanUserRequest struct {
	Reason string `json:"reason"`
}

// Response models

// UserResponse is one account on the wire. The password hash and OTP state
// never leave the service.
type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"fullName"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	IsVerified bool    `json:"isVerified"`

	BanReason    *string    `json:"banReason,omitempty"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// SignupResponse returns the created account. The verification code is
// never part of the response; while email delivery is simulated it is
// logged server-side only.
type SignupResponse struct {
	User *UserResponse `json:"user"`
}

// LoginResponse returns the session token and the account
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AdminUserResponse is one row of the admin user listing
type AdminUserResponse struct {
	UserResponse
	TotalBookings int     `json:"totalBookings"`
	TotalSpent    float64 `json:"totalSpent"`
}

// UserListResponse is a page of the admin listing
type UserListResponse struct {
	Users []*AdminUserResponse `json:"users"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int                  `json:"total"`
}

// FromDomainUser converts a domain user to the wire model
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		AvatarURL:    u.AvatarURL,
		Role:         string(u.Role),
		Status:       string(u.Status),
		IsVerified:   u.IsVerified,
		BanReason:    u.BanReason,
		LastActiveAt: u.LastActiveAt,
		CreatedAt:    u.CreatedAt,
	}
}
