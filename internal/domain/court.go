package domain

import "time"

// CourtStatus represents the operational state of a court
type CourtStatus string

const (
	CourtStatusActive      CourtStatus = "active"
	CourtStatusMaintenance CourtStatus = "maintenance"
	CourtStatusInactive    CourtStatus = "inactive"
)

// Court is a bookable unit within a venue, tied to one sport and an hourly
// price. Operating hours are a whole-hour half-open window [OpenHour, CloseHour).
type Court struct {
	ID           int64
	VenueID      int64
	Name         string
	Sport        string
	PricePerHour float64
	OpenHour     int
	CloseHour    int
	Status       CourtStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns true if new bookings may target this court
func (c *Court) IsBookable() bool {
	return c.Status == CourtStatusActive
}

// OperatingHours returns the number of bookable whole hours in a day
func (c *Court) OperatingHours() int {
	if c.CloseHour <= c.OpenHour {
		return 0
	}
	return c.CloseHour - c.OpenHour
}

// ContainsWindow reports whether [startHour, startHour+duration) fits inside
// the court's operating window.
func (c *Court) ContainsWindow(startHour, durationHours int) bool {
	return startHour >= c.OpenHour && startHour+durationHours <= c.CloseHour
}
