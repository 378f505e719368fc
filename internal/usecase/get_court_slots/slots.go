package get_court_slots

import (
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// buildSlotGrid projects bookings and blocks onto the court's hour grid.
// One cell per operating hour, in order. Precedence per hour:
//
//  1. an active booking covering the hour wins (booked)
//  2. otherwise an owner block on the hour (blocked or maintenance)
//  3. otherwise the cell is available
//
// A multi-hour booking marks every hour it covers. A court that is itself
// under maintenance shows every free hour as maintenance.
func buildSlotGrid(court *domain.Court, bookings []*domain.Booking, blocks []*domain.SlotBlock) []Slot {
	slots := make([]Slot, 0, court.OperatingHours())

	for hour := court.OpenHour; hour < court.CloseHour; hour++ {
		slot := Slot{
			StartTime: types.NewTimeStringFromHour(hour),
			EndTime:   types.NewTimeStringFromHour(hour + 1),
			Status:    string(domain.SlotStatusAvailable),
		}

		if isHourBooked(hour, bookings) {
			slot.Status = string(domain.SlotStatusBooked)
		} else if block := blockForHour(hour, blocks); block != nil {
			slot.Status = string(block.SlotStatus())
			slot.Reason = block.Reason
		} else if court.Status == domain.CourtStatusMaintenance {
			slot.Status = string(domain.SlotStatusMaintenance)
		}

		slots = append(slots, slot)
	}

	return slots
}

func isHourBooked(hour int, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.CoversHour(hour) {
			return true
		}
	}
	return false
}

func blockForHour(hour int, blocks []*domain.SlotBlock) *domain.SlotBlock {
	for _, block := range blocks {
		if block.Hour == hour {
			return block
		}
	}
	return nil
}
