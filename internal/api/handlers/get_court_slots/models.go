package get_court_slots

import (
	"github.com/quickcourt/quickcourt-backend/internal/domain"
	getCourtSlots "github.com/quickcourt/quickcourt-backend/internal/usecase/get_court_slots"
)

// SlotResponse is one grid cell on the wire
type SlotResponse struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
}

// SlotsResponse is the HTTP response model
type SlotsResponse struct {
	VenueID      int64          `json:"venueId"`
	CourtID      int64          `json:"courtId"`
	Date         string         `json:"date"`
	PricePerHour float64        `json:"pricePerHour"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getCourtSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    slot.Status,
			Reason:    slot.Reason,
		})
	}

	return &SlotsResponse{
		VenueID:      resp.VenueID,
		CourtID:      resp.CourtID,
		Date:         resp.Date.Format(domain.DateFormat),
		PricePerHour: resp.PricePerHour,
		Slots:        slots,
	}
}
