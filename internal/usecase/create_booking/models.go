package create_booking

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// Request is the create booking request
type Request struct {
	UserID        int64
	CourtID       int64
	Date          time.Time        // booking date, time part ignored
	StartTime     types.TimeString // whole hour, e.g. "10:00"
	DurationHours int

	// IdempotencyKey deduplicates retried submissions. Optional; the use
	// case generates one when the client does not send it.
	IdempotencyKey *string
}

// Response is the created (or replayed) booking
type Response struct {
	ID            int64
	UserID        int64
	VenueID       int64
	CourtID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Status        string

	// Denormalized at creation time; later price edits never touch these
	VenueName  string
	CourtName  string
	Sport      string
	TotalPrice float64

	// PaymentURL points at the hosted payment page for this booking
	PaymentURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
