package domain

// SlotStatus represents the availability of one hourly slot
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusBlocked     SlotStatus = "blocked"
	SlotStatusMaintenance SlotStatus = "maintenance"
)

// TimeSlot is one derived hour of a court's grid on a given date. Slots are
// never persisted: they are recomputed from bookings and blocks on demand,
// so cancelling a booking makes its hours reappear without any slot flipping.
type TimeSlot struct {
	Hour   int
	Status SlotStatus
	Reason *string
}

// IsBookable returns true if a booking may cover this slot
func (s *TimeSlot) IsBookable() bool {
	return s.Status == SlotStatusAvailable
}
