package create_booking

import (
	"fmt"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	createBooking "github.com/quickcourt/quickcourt-backend/internal/usecase/create_booking"
	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// CreateBookingRequest is the HTTP request body
type CreateBookingRequest struct {
	CourtID        int64   `json:"courtId"`
	Date           string  `json:"date"`      // YYYY-MM-DD
	StartTime      string  `json:"startTime"` // HH:00
	DurationHours  int     `json:"durationHours"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case request
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD: %v", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime, expected HH:00: %v", err)
	}

	return &createBooking.Request{
		UserID:         userID,
		CourtID:        r.CourtID,
		Date:           date,
		StartTime:      startTime,
		DurationHours:  r.DurationHours,
		IdempotencyKey: r.IdempotencyKey,
	}, nil
}

// BookingResponse is the HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	VenueID       int64   `json:"venueId"`
	CourtID       int64   `json:"courtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	VenueName     string  `json:"venueName"`
	CourtName     string  `json:"courtName"`
	Sport         string  `json:"sport"`
	TotalPrice    float64 `json:"totalPrice"`
	PaymentURL    string  `json:"paymentUrl"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		VenueID:       resp.VenueID,
		CourtID:       resp.CourtID,
		Date:          resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		VenueName:     resp.VenueName,
		CourtName:     resp.CourtName,
		Sport:         resp.Sport,
		TotalPrice:    resp.TotalPrice,
		PaymentURL:    resp.PaymentURL,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
