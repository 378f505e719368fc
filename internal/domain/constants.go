package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking workflow limits
const (
	MinDurationHours = 1

	// DefaultMaxDurationHours is used when the config leaves the limit unset
	DefaultMaxDurationHours = 4
)

// Court operating window bounds (whole hours of a day)
const (
	MinOperatingHour = 0
	MaxOperatingHour = 24
)

// Listing defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HomePopularVenuesLimit caps the home page venue carousel
	HomePopularVenuesLimit = 6
)

// Moderation input limits
const (
	MaxReasonLength       = 500
	MaxAdminNotesLength   = 1000
	MaxDescriptionLength  = 2000
	MaxCancellationReason = 500
)
