package paymentpage

import (
	"fmt"
	"net/url"
	"strconv"
)

// Builder produces links to the externally hosted payment page.
// The page is a static simulator: it reads the booking summary from query
// parameters and never calls back, so the booking is confirmed before the
// user is redirected.
type Builder struct {
	baseURL *url.URL
	log     Logger
}

// NewBuilder validates the configured page URL once at startup
func NewBuilder(rawURL string, log Logger) (*Builder, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing scheme or host", ErrInvalidBaseURL, rawURL)
	}

	return &Builder{baseURL: parsed, log: log}, nil
}

// BuildURL renders the payment page link for one booking
func (b *Builder) BuildURL(params PaymentParams) (string, error) {
	if params.BookingID <= 0 {
		return "", fmt.Errorf("%w: booking id must be positive", ErrInvalidParams)
	}
	if params.VenueName == "" || params.CourtName == "" {
		return "", fmt.Errorf("%w: venue and court names are required", ErrInvalidParams)
	}
	if params.TotalHours <= 0 {
		return "", fmt.Errorf("%w: total hours must be positive", ErrInvalidParams)
	}

	pageURL := *b.baseURL

	query := pageURL.Query()
	query.Set("booking_id", strconv.FormatInt(params.BookingID, 10))
	query.Set("venue_name", params.VenueName)
	query.Set("court_name", params.CourtName)
	query.Set("booking_date", params.BookingDate)
	query.Set("start_time", params.StartTime.String())
	query.Set("end_time", params.EndTime.String())
	query.Set("total_hours", strconv.Itoa(params.TotalHours))
	query.Set("price_per_hour", strconv.FormatFloat(params.PricePerHour, 'f', 2, 64))
	query.Set("total_price", strconv.FormatFloat(params.TotalPrice, 'f', 2, 64))
	pageURL.RawQuery = query.Encode()

	b.log.Info("Built payment page link for booking_id=%d, total_price=%.2f", params.BookingID, params.TotalPrice)

	return pageURL.String(), nil
}
