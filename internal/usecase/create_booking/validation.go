package create_booking

import (
	"fmt"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// validateRequest checks the request shape before any storage access
func validateRequest(req *Request, maxDurationHours int) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > maxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidDuration, domain.MinDurationHours, maxDurationHours)
	}

	return nil
}

// validateDate checks that the date is today or later and inside the
// advance booking window. advanceBookingDays = 0 means no upper limit.
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// firstBookedHour returns the first hour of [startHour, startHour+duration)
// covered by an active booking. Cancelled bookings never count.
func firstBookedHour(startHour, durationHours int, bookings []*domain.Booking) (int, bool) {
	for hour := startHour; hour < startHour+durationHours; hour++ {
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			if booking.CoversHour(hour) {
				return hour, true
			}
		}
	}
	return 0, false
}

// firstBlockedHour returns the first hour of the window carrying a block
func firstBlockedHour(startHour, durationHours int, blocks []*domain.SlotBlock) (int, bool) {
	for hour := startHour; hour < startHour+durationHours; hour++ {
		for _, block := range blocks {
			if block.Hour == hour {
				return hour, true
			}
		}
	}
	return 0, false
}

// isDateInPast compares calendar days only
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
