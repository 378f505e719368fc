package create_block

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	blockRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/block"
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

type fakeVenueRepo struct {
	venue *domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, nil
}

type fakeBlockRepo struct {
	exists  bool
	created *domain.SlotBlock
}

func (f *fakeBlockRepo) Create(_ context.Context, b *domain.SlotBlock) (*domain.SlotBlock, error) {
	if f.exists {
		return nil, blockRepo.ErrBlockExists
	}
	created := *b
	created.ID = 1
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

func testCourt() *domain.Court {
	return &domain.Court{
		ID:        10,
		VenueID:   5,
		OpenHour:  8,
		CloseHour: 22,
		Status:    domain.CourtStatusActive,
	}
}

func testVenue() *domain.Venue {
	return &domain.Venue{ID: 5, OwnerID: 2, Status: domain.VenueStatusApproved}
}

func validRequest() *Request {
	return &Request{
		OwnerID:   2,
		CourtID:   10,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		Kind:      "blocked",
		Reason:    ptr.Ptr("private event"),
	}
}

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeBlockRepo) *UseCase {
	return NewUseCase(bookings, &fakeCourtRepo{testCourt()}, &fakeVenueRepo{testVenue()}, blocks,
		fakeTxManager{}, noopLogger{})
}

// Tests

func TestCreateBlock_Success(t *testing.T) {
	blocks := &fakeBlockRepo{}
	uc := newTestUseCase(&fakeBookingRepo{}, blocks)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:00", resp.EndTime.String())
	assert.Equal(t, "blocked", resp.Kind)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "private event", *resp.Reason)

	require.NotNil(t, blocks.created)
	assert.Equal(t, int64(2), blocks.created.CreatedBy)
	assert.Equal(t, 14, blocks.created.Hour)
}

func TestCreateBlock_HourBooked(t *testing.T) {
	// Active booking 13:00-15:00 covers the requested 14:00 hour
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 13, DurationHours: 2, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookings, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHourBooked)
}

func TestCreateBlock_CancelledBookingDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 10, StartHour: 14, DurationHours: 1, Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(bookings, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBlock_AlreadyBlocked(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{exists: true})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyBlocked)
}

func TestCreateBlock_NotCourtOwner(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	req := validRequest()
	req.OwnerID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotCourtOwner)
}

func TestCreateBlock_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	req := validRequest()
	req.StartTime = "22:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestCreateBlock_InvalidKind(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	req := validRequest()
	req.Kind = "closed"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
