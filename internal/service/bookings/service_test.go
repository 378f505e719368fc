package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/booking"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/bookings/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

// Fakes

type fakeBookingRepo struct {
	booking   *domain.Booking
	byUser    []*domain.Booking
	cancelled *int64
	reason    string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelled = &id
	f.reason = reason
	return nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

var (
	playerCaller = domain.AuthUser{ID: 7, Role: domain.RolePlayer}
	ownerCaller  = domain.AuthUser{ID: 2, Role: domain.RoleOwner}
	adminCaller  = domain.AuthUser{ID: 99, Role: domain.RoleAdmin}
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        7,
		VenueID:       5,
		CourtID:       10,
		BookingDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartHour:     10,
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
		VenueName:     "Smash Arena",
		CourtName:     "Court 1",
		Sport:         "tennis",
		TotalPrice:    50,
	}
}

func testVenue() *domain.Venue {
	return &domain.Venue{ID: 5, OwnerID: 2, Status: domain.VenueStatusApproved}
}

func newTestService(bookings *fakeBookingRepo, venues *fakeVenueRepo) *Service {
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	if venues == nil {
		venues = &fakeVenueRepo{venue: testVenue()}
	}
	return NewService(bookings, venues, noopLogger{})
}

// Tests

func TestGetByID_PlayerSeesOwnBooking(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	resp, err := svc.GetByID(context.Background(), 1, playerCaller)
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.Equal(t, "Smash Arena", resp.VenueName)
}

func TestGetByID_VenueOwnerSeesBooking(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	_, err := svc.GetByID(context.Background(), 1, ownerCaller)
	assert.NoError(t, err)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	_, err := svc.GetByID(context.Background(), 1, adminCaller)
	assert.NoError(t, err)
}

func TestGetByID_OtherPlayerDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	other := domain.AuthUser{ID: 55, Role: domain.RolePlayer}
	_, err := svc.GetByID(context.Background(), 1, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_OtherOwnerDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	other := domain.AuthUser{ID: 55, Role: domain.RoleOwner}
	_, err := svc.GetByID(context.Background(), 1, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil)

	_, err := svc.GetByID(context.Background(), 1, playerCaller)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_OwnHistory(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{byUser: []*domain.Booking{testBooking()}}, nil)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7}, playerCaller)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetUserBookings_OtherUserDenied(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 55}, playerCaller)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_AdminSeesAnyUser(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil)

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 55}, adminCaller)
	assert.NoError(t, err)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(nil, nil)

	req := &models.GetUserBookingsRequest{UserID: 7, Status: ptr.Ptr("pending")}
	_, err := svc.GetUserBookings(context.Background(), req, playerCaller)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVenueBookings_OwnerOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeVenueRepo{venue: testVenue()})

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{VenueID: 5}, ownerCaller)
	assert.NoError(t, err)

	other := domain.AuthUser{ID: 55, Role: domain.RoleOwner}
	_, err = svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{VenueID: 5}, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetVenueBookings_VenueNotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeVenueRepo{})

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{VenueID: 5}, ownerCaller)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCancel_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(bookings, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "rain"}, playerCaller)
	require.NoError(t, err)

	require.NotNil(t, bookings.cancelled)
	assert.Equal(t, int64(1), *bookings.cancelled)
	assert.Equal(t, "rain", bookings.reason)
}

func TestCancel_CompletedBooking(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCompleted
	svc := newTestService(&fakeBookingRepo{booking: booking}, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{}, playerCaller)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled
	svc := newTestService(&fakeBookingRepo{booking: booking}, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{}, playerCaller)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_OtherPlayerDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking()}, nil)

	other := domain.AuthUser{ID: 55, Role: domain.RolePlayer}
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{}, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
