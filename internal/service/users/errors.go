package users

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email already has an account
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email or password do not match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotVerified is returned when an unverified account tries to log in
	ErrNotVerified = errors.New("account is not verified")

	// ErrBanned is returned when a banned or suspended account tries to log in
	ErrBanned = errors.New("account is banned")

	// ErrInvalidOTP is returned when the verification code is wrong or expired
	ErrInvalidOTP = errors.New("invalid or expired verification code")

	// ErrAlreadyVerified is returned when verification targets a verified account
	ErrAlreadyVerified = errors.New("account is already verified")

	// ErrReasonRequired is returned when a ban carries no reason
	ErrReasonRequired = errors.New("ban reason is required")

	// ErrCannotBanAdmin is returned when a ban targets an admin account
	ErrCannotBanAdmin = errors.New("admin accounts cannot be banned")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
