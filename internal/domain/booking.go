package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed reservation of one or more consecutive
// hourly slots. Venue/court names, the sport and the total price are
// denormalized at creation time: the price never changes afterwards, even if
// the court's hourly price does.
type Booking struct {
	ID            int64
	UserID        int64
	VenueID       int64
	CourtID       int64
	BookingDate   time.Time
	StartHour     int
	DurationHours int
	Status        BookingStatus

	// Denormalized data for history
	VenueName  string
	CourtName  string
	Sport      string
	TotalPrice float64

	// IdempotencyKey deduplicates retried submissions
	IdempotencyKey string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndHour returns the exclusive end hour of the booking
func (b *Booking) EndHour() int {
	return b.StartHour + b.DurationHours
}

// CoversHour reports whether the booking occupies the given whole hour.
// A two-hour booking starting at 10 covers both 10 and 11.
func (b *Booking) CoversHour(hour int) bool {
	return hour >= b.StartHour && hour < b.EndHour()
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CourtDayFilter selects the bookings of one court on one date
type CourtDayFilter struct {
	CourtID int64
	Date    time.Time
	// IncludeInactive keeps cancelled bookings in the result
	IncludeInactive bool
}

// VenueBookingsFilter narrows the owner's booking overview
type VenueBookingsFilter struct {
	VenueID         int64
	CourtID         *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}

// UserBookingStats aggregates a user's booking history for admin listings
type UserBookingStats struct {
	TotalBookings int
	TotalSpent    float64
}
