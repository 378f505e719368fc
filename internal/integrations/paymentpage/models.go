package paymentpage

import "github.com/quickcourt/quickcourt-backend/pkg/types"

// PaymentParams describes one booking for the hosted payment page.
// All fields end up as query parameters; the page renders the summary and
// the simulated card form from them.
type PaymentParams struct {
	BookingID    int64
	VenueName    string
	CourtName    string
	BookingDate  string // YYYY-MM-DD
	StartTime    types.TimeString
	EndTime      types.TimeString
	TotalHours   int
	PricePerHour float64
	TotalPrice   float64
}
