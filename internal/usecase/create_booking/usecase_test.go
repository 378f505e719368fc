package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/booking"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/integrations/paymentpage"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

// Fakes

type fakeBookingRepo struct {
	bookings []*domain.Booking
	byKey    map[string]*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	f.nextID++
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByIdempotencyKey(_ context.Context, key string) (*domain.Booking, error) {
	if b, ok := f.byKey[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
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

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if f.venue == nil || f.venue.ID != id {
		return nil, venueRepo.ErrVenueNotFound
	}
	return f.venue, nil
}

type fakeBlockRepo struct {
	blocks []*domain.SlotBlock
}

func (f *fakeBlockRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.SlotBlock, error) {
	return f.blocks, nil
}

type fakePaymentPage struct{}

func (fakePaymentPage) BuildURL(params paymentpage.PaymentParams) (string, error) {
	return fmt.Sprintf("https://pay.example.com/?booking_id=%d", params.BookingID), nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

var testNow = time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           10,
		VenueID:      5,
		Name:         "Court 1",
		Sport:        "badminton",
		PricePerHour: 25,
		OpenHour:     6,
		CloseHour:    22,
		Status:       domain.CourtStatusActive,
	}
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:      5,
		OwnerID: 2,
		Name:    "Smash Arena",
		Status:  domain.VenueStatusApproved,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, courts *fakeCourtRepo, venues *fakeVenueRepo, blocks *fakeBlockRepo) *UseCase {
	uc := NewUseCase(bookings, courts, venues, blocks, fakePaymentPage{}, fakeTxManager{},
		Limits{MaxDurationHours: 4, AdvanceBookingDays: 30}, noopLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:        1,
		CourtID:       10,
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationHours: 2,
	}
}

// Tests

func TestCreateBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "12:00", resp.EndTime.String())
	assert.Equal(t, "Smash Arena", resp.VenueName)
	assert.Equal(t, "Court 1", resp.CourtName)
	assert.Equal(t, "badminton", resp.Sport)

	// 2 hours at $25/hour, captured at creation time
	assert.Equal(t, 50.0, resp.TotalPrice)
	assert.Contains(t, resp.PaymentURL, "booking_id=1")

	require.NotNil(t, bookings.created)
	assert.NotEmpty(t, bookings.created.IdempotencyKey, "a key is generated when the client sends none")
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	// Existing two-hour booking 10:00-12:00; a request for 11:00 must conflict
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 99, CourtID: 10, StartHour: 10, DurationHours: 2, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	req := validRequest()
	req.StartTime = "11:00"
	req.DurationHours = 1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_CancelledBookingDoesNotConflict(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 99, CourtID: 10, StartHour: 10, DurationHours: 2, Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_SlotBlocked(t *testing.T) {
	blocks := &fakeBlockRepo{blocks: []*domain.SlotBlock{
		{ID: 7, CourtID: 10, Hour: 11, Kind: domain.BlockKindMaintenance},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, blocks)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestCreateBooking_IdempotentReplay(t *testing.T) {
	existing := &domain.Booking{
		ID:             42,
		UserID:         1,
		VenueID:        5,
		CourtID:        10,
		BookingDate:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartHour:      10,
		DurationHours:  2,
		Status:         domain.StatusConfirmed,
		VenueName:      "Smash Arena",
		CourtName:      "Court 1",
		Sport:          "badminton",
		TotalPrice:     50,
		IdempotencyKey: "retry-key",
	}
	bookings := &fakeBookingRepo{byKey: map[string]*domain.Booking{"retry-key": existing}}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	req := validRequest()
	req.IdempotencyKey = ptr.Ptr("retry-key")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Nil(t, bookings.created, "replay must not insert a second row")
}

func TestCreateBooking_DateValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	past := validRequest()
	past.Date = testNow.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), past)
	assert.ErrorIs(t, err, ErrInvalidDate)

	today := validRequest()
	today.Date = testNow
	_, err = uc.Execute(context.Background(), today)
	assert.NoError(t, err, "booking for today is allowed")

	farFuture := validRequest()
	farFuture.Date = testNow.AddDate(0, 0, 31)
	_, err = uc.Execute(context.Background(), farFuture)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestCreateBooking_DurationLimits(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	zero := validRequest()
	zero.DurationHours = 0
	_, err := uc.Execute(context.Background(), zero)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	tooLong := validRequest()
	tooLong.DurationHours = 5
	_, err = uc.Execute(context.Background(), tooLong)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCreateBooking_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	// Court closes at 22; 21:00 + 2h spills over
	req := validRequest()
	req.StartTime = "21:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	before := validRequest()
	before.StartTime = "05:00"
	before.DurationHours = 1
	_, err = uc.Execute(context.Background(), before)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestCreateBooking_CourtNotBookable(t *testing.T) {
	court := testCourt()
	court.Status = domain.CourtStatusMaintenance
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: court}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotBookable)
}

func TestCreateBooking_VenueNotApproved(t *testing.T) {
	venue := testVenue()
	venue.Status = domain.VenueStatusPending
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt()}, &fakeVenueRepo{venue: venue}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueNotApproved)
}

func TestCreateBooking_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{}, &fakeVenueRepo{venue: testVenue()}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
