package get_court_slots

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// Request asks for one court's slot grid on one date
type Request struct {
	VenueID int64
	CourtID int64
	Date    time.Time
}

// Response is the full slot grid for the date.
// The grid always has exactly CloseHour-OpenHour entries; unavailable hours
// are present with their status rather than omitted.
type Response struct {
	VenueID      int64
	CourtID      int64
	Date         time.Time
	PricePerHour float64
	Slots        []Slot
}

// Slot is one whole-hour cell of the grid
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string  // available, booked, blocked, maintenance
	Reason    *string // owner-entered reason for blocked/maintenance cells
}
