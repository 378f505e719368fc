package paymentpage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testParams() PaymentParams {
	return PaymentParams{
		BookingID:    42,
		VenueName:    "Smash Arena",
		CourtName:    "Court 1",
		BookingDate:  "2025-10-15",
		StartTime:    "10:00",
		EndTime:      "12:00",
		TotalHours:   2,
		PricePerHour: 25,
		TotalPrice:   50,
	}
}

func TestNewBuilder_RejectsBadURL(t *testing.T) {
	_, err := NewBuilder("not-a-url", noopLogger{})
	assert.ErrorIs(t, err, ErrInvalidBaseURL)

	_, err = NewBuilder("", noopLogger{})
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestBuilder_BuildURL(t *testing.T) {
	b, err := NewBuilder("https://pay.example.com/checkout", noopLogger{})
	require.NoError(t, err)

	link, err := b.BuildURL(testParams())
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "pay.example.com", parsed.Host)
	assert.Equal(t, "/checkout", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "42", query.Get("booking_id"))
	assert.Equal(t, "Smash Arena", query.Get("venue_name"))
	assert.Equal(t, "2025-10-15", query.Get("booking_date"))
	assert.Equal(t, "10:00", query.Get("start_time"))
	assert.Equal(t, "12:00", query.Get("end_time"))
	assert.Equal(t, "2", query.Get("total_hours"))
	assert.Equal(t, "25.00", query.Get("price_per_hour"))
	assert.Equal(t, "50.00", query.Get("total_price"))
}

func TestBuilder_BuildURL_Validation(t *testing.T) {
	b, err := NewBuilder("https://pay.example.com/checkout", noopLogger{})
	require.NoError(t, err)

	missing := testParams()
	missing.BookingID = 0
	_, err = b.BuildURL(missing)
	assert.ErrorIs(t, err, ErrInvalidParams)

	noNames := testParams()
	noNames.VenueName = ""
	_, err = b.BuildURL(noNames)
	assert.ErrorIs(t, err, ErrInvalidParams)
}
