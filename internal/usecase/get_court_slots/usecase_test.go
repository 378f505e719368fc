package get_court_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

// Fakes

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, courtRepo.ErrCourtNotFound
	}
	return f.court, nil
}

type fakeBlockRepo struct {
	blocks []*domain.SlotBlock
}

func (f *fakeBlockRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.SlotBlock, error) {
	return f.blocks, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           10,
		VenueID:      5,
		Name:         "Court 1",
		Sport:        "tennis",
		PricePerHour: 30,
		OpenHour:     8,
		CloseHour:    20,
		Status:       domain.CourtStatusActive,
	}
}

func testRequest() *Request {
	return &Request{
		VenueID: 5,
		CourtID: 10,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(court *domain.Court, bookings []*domain.Booking, blocks []*domain.SlotBlock) *UseCase {
	return NewUseCase(&fakeBookingRepo{bookings}, &fakeCourtRepo{court}, &fakeBlockRepo{blocks}, noopLogger{})
}

func statusAt(t *testing.T, resp *Response, startTime string) string {
	t.Helper()
	for _, slot := range resp.Slots {
		if slot.StartTime.String() == startTime {
			return slot.Status
		}
	}
	t.Fatalf("no slot starting at %s", startTime)
	return ""
}

// Tests

func TestGetCourtSlots_FullGrid(t *testing.T) {
	uc := newTestUseCase(testCourt(), nil, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// One cell per operating hour, [8, 20)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "19:00", resp.Slots[11].StartTime.String())
	assert.Equal(t, "20:00", resp.Slots[11].EndTime.String())
	assert.Equal(t, 30.0, resp.PricePerHour)

	for _, slot := range resp.Slots {
		assert.Equal(t, "available", slot.Status)
	}
}

func TestGetCourtSlots_MidnightCloseRendersAs2400(t *testing.T) {
	court := testCourt()
	court.OpenHour = 22
	court.CloseHour = 24
	uc := newTestUseCase(court, nil, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "23:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, "24:00", resp.Slots[1].EndTime.String())
}

func TestGetCourtSlots_MultiHourBookingMarksEveryHour(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 10, DurationHours: 3, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(testCourt(), bookings, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "available", statusAt(t, resp, "09:00"))
	assert.Equal(t, "booked", statusAt(t, resp, "10:00"))
	assert.Equal(t, "booked", statusAt(t, resp, "11:00"))
	assert.Equal(t, "booked", statusAt(t, resp, "12:00"))
	assert.Equal(t, "available", statusAt(t, resp, "13:00"))
}

func TestGetCourtSlots_CancelledBookingFreesSlots(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 10, DurationHours: 2, Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(testCourt(), bookings, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "available", statusAt(t, resp, "10:00"))
	assert.Equal(t, "available", statusAt(t, resp, "11:00"))
}

func TestGetCourtSlots_BlocksProjectTheirKind(t *testing.T) {
	blocks := []*domain.SlotBlock{
		{ID: 1, CourtID: 10, Hour: 9, Kind: domain.BlockKindBlocked, Reason: ptr.Ptr("private event")},
		{ID: 2, CourtID: 10, Hour: 14, Kind: domain.BlockKindMaintenance},
	}
	uc := newTestUseCase(testCourt(), nil, blocks)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "blocked", statusAt(t, resp, "09:00"))
	assert.Equal(t, "maintenance", statusAt(t, resp, "14:00"))

	for _, slot := range resp.Slots {
		if slot.StartTime.String() == "09:00" {
			require.NotNil(t, slot.Reason)
			assert.Equal(t, "private event", *slot.Reason)
		}
	}
}

func TestGetCourtSlots_BookingWinsOverBlock(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 10, DurationHours: 1, Status: domain.StatusConfirmed},
	}
	blocks := []*domain.SlotBlock{
		{ID: 1, CourtID: 10, Hour: 10, Kind: domain.BlockKindBlocked},
	}
	uc := newTestUseCase(testCourt(), bookings, blocks)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "booked", statusAt(t, resp, "10:00"))
}

func TestGetCourtSlots_CourtMaintenanceShadesFreeHours(t *testing.T) {
	court := testCourt()
	court.Status = domain.CourtStatusMaintenance
	bookings := []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 10, DurationHours: 1, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(court, bookings, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Existing bookings still show as booked; free hours shade as maintenance
	assert.Equal(t, "booked", statusAt(t, resp, "10:00"))
	assert.Equal(t, "maintenance", statusAt(t, resp, "11:00"))
}

func TestGetCourtSlots_CourtNotInVenue(t *testing.T) {
	uc := newTestUseCase(testCourt(), nil, nil)

	req := testRequest()
	req.VenueID = 6

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCourtNotInVenue)
}

func TestGetCourtSlots_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
