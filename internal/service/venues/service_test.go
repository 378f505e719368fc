package venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

// Fakes

type fakeVenueRepo struct {
	venue         *domain.Venue
	created       *domain.Venue
	updatedStatus *domain.VenueStatus
}

func (f *fakeVenueRepo) Create(_ context.Context, v *domain.Venue) (*domain.Venue, error) {
	created := *v
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if f.venue == nil || f.venue.ID != id {
		return nil, venueRepo.ErrVenueNotFound
	}
	return f.venue, nil
}

func (f *fakeVenueRepo) List(_ context.Context, _ domain.VenuesFilter) ([]*domain.VenueListing, error) {
	return nil, nil
}

func (f *fakeVenueRepo) PopularVenues(_ context.Context, _ int) ([]*domain.VenueListing, error) {
	return nil, nil
}

func (f *fakeVenueRepo) PopularSports(_ context.Context) ([]domain.SportPopularity, error) {
	return nil, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, _ *domain.Venue) error {
	return nil
}

func (f *fakeVenueRepo) UpdateStatus(_ context.Context, _ int64, status domain.VenueStatus, _ *string) error {
	f.updatedStatus = &status
	return nil
}

type fakeCourtRepo struct {
	court       *domain.Court
	deactivated bool
}

func (f *fakeCourtRepo) Create(_ context.Context, c *domain.Court) (*domain.Court, error) {
	created := *c
	created.ID = 10
	return &created, nil
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, courtRepo.ErrCourtNotFound
	}
	return f.court, nil
}

func (f *fakeCourtRepo) GetByVenueID(_ context.Context, _ int64, _ bool) ([]*domain.Court, error) {
	return nil, nil
}

func (f *fakeCourtRepo) Update(_ context.Context, _ *domain.Court) error {
	return nil
}

func (f *fakeCourtRepo) Deactivate(_ context.Context, _ int64) error {
	f.deactivated = true
	return nil
}

type fakeBookingRepo struct {
	hasActive bool
}

func (f *fakeBookingRepo) HasActiveFromDate(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.hasActive, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

var (
	ownerCaller  = domain.AuthUser{ID: 2, Role: domain.RoleOwner}
	adminCaller  = domain.AuthUser{ID: 99, Role: domain.RoleAdmin}
	playerCaller = domain.AuthUser{ID: 7, Role: domain.RolePlayer}
)

func pendingVenue() *domain.Venue {
	return &domain.Venue{ID: 5, OwnerID: 2, Name: "Smash Arena", Status: domain.VenueStatusPending}
}

func approvedVenue() *domain.Venue {
	v := pendingVenue()
	v.Status = domain.VenueStatusApproved
	return v
}

func validVenueRequest() *models.VenueRequest {
	return &models.VenueRequest{
		Name:    "Smash Arena",
		Address: "12 Court Street",
		Sports:  []string{"tennis"},
	}
}

func validCourtRequest() *models.CourtRequest {
	return &models.CourtRequest{
		Name:         "Court 1",
		Sport:        "tennis",
		PricePerHour: 30,
		OpenTime:     "08:00",
		CloseTime:    "22:00",
	}
}

func newTestService(venues *fakeVenueRepo, courts *fakeCourtRepo, bookings *fakeBookingRepo) *Service {
	if venues == nil {
		venues = &fakeVenueRepo{}
	}
	if courts == nil {
		courts = &fakeCourtRepo{}
	}
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	return NewService(venues, courts, bookings, noopLogger{})
}

// Tests

func TestCreateVenue_StartsPending(t *testing.T) {
	venues := &fakeVenueRepo{}
	svc := newTestService(venues, nil, nil)

	resp, err := svc.Create(context.Background(), validVenueRequest(), ownerCaller)
	require.NoError(t, err)

	assert.Equal(t, string(domain.VenueStatusPending), resp.Status)
	assert.Equal(t, int64(2), resp.OwnerID)
	require.NotNil(t, venues.created)
	assert.Equal(t, domain.VenueStatusPending, venues.created.Status)
}

func TestCreateVenue_Validation(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	req := validVenueRequest()
	req.Sports = nil

	_, err := svc.Create(context.Background(), req, ownerCaller)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateVenue_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, nil, nil)

	other := domain.AuthUser{ID: 55, Role: domain.RoleOwner}
	_, err := svc.Update(context.Background(), 5, validVenueRequest(), other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetVenue_HiddenFromPlayers(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: pendingVenue()}, nil, nil)

	_, err := svc.GetByID(context.Background(), 5, &playerCaller)
	assert.ErrorIs(t, err, ErrVenueNotVisible)

	_, err = svc.GetByID(context.Background(), 5, nil)
	assert.ErrorIs(t, err, ErrVenueNotVisible)
}

func TestGetVenue_OwnerAndAdminSeePending(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: pendingVenue()}, nil, nil)

	resp, err := svc.GetByID(context.Background(), 5, &ownerCaller)
	require.NoError(t, err)
	assert.Equal(t, string(domain.VenueStatusPending), resp.Status)

	_, err = svc.GetByID(context.Background(), 5, &adminCaller)
	assert.NoError(t, err)
}

func TestApproveVenue(t *testing.T) {
	venues := &fakeVenueRepo{venue: pendingVenue()}
	svc := newTestService(venues, nil, nil)

	resp, err := svc.Approve(context.Background(), 5, &models.ModerateVenueRequest{})
	require.NoError(t, err)

	assert.Equal(t, string(domain.VenueStatusApproved), resp.Status)
	require.NotNil(t, venues.updatedStatus)
	assert.Equal(t, domain.VenueStatusApproved, *venues.updatedStatus)
}

func TestRejectVenue_RequiresComments(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: pendingVenue()}, nil, nil)

	_, err := svc.Reject(context.Background(), 5, &models.ModerateVenueRequest{})
	assert.ErrorIs(t, err, ErrCommentsRequired)

	_, err = svc.Reject(context.Background(), 5, &models.ModerateVenueRequest{Comments: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrCommentsRequired)

	resp, err := svc.Reject(context.Background(), 5, &models.ModerateVenueRequest{Comments: ptr.Ptr("photos missing")})
	require.NoError(t, err)
	assert.Equal(t, string(domain.VenueStatusRejected), resp.Status)
}

func TestModerateVenue_NotPending(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, nil, nil)

	_, err := svc.Approve(context.Background(), 5, &models.ModerateVenueRequest{})
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestCreateCourt_InvalidWindow(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, nil, nil)

	req := validCourtRequest()
	req.OpenTime = "22:00"
	req.CloseTime = "08:00"

	_, err := svc.CreateCourt(context.Background(), 5, req, ownerCaller)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateCourt_RejectsHalfHours(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, nil, nil)

	req := validCourtRequest()
	req.OpenTime = "08:30"

	_, err := svc.CreateCourt(context.Background(), 5, req, ownerCaller)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateCourt_Success(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, nil, nil)

	resp, err := svc.CreateCourt(context.Background(), 5, validCourtRequest(), ownerCaller)
	require.NoError(t, err)

	assert.Equal(t, "08:00", resp.OpenTime)
	assert.Equal(t, "22:00", resp.CloseTime)
	assert.Equal(t, string(domain.CourtStatusActive), resp.Status)
}

func TestDeleteCourt_WithUpcomingBookings(t *testing.T) {
	courts := &fakeCourtRepo{court: &domain.Court{ID: 10, VenueID: 5}}
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, courts, &fakeBookingRepo{hasActive: true})

	err := svc.DeleteCourt(context.Background(), 10, ownerCaller)
	assert.ErrorIs(t, err, ErrCourtHasBookings)
	assert.False(t, courts.deactivated)
}

func TestDeleteCourt_Success(t *testing.T) {
	courts := &fakeCourtRepo{court: &domain.Court{ID: 10, VenueID: 5}}
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, courts, &fakeBookingRepo{})

	err := svc.DeleteCourt(context.Background(), 10, ownerCaller)
	require.NoError(t, err)
	assert.True(t, courts.deactivated)
}

func TestDeleteCourt_NotFound(t *testing.T) {
	svc := newTestService(&fakeVenueRepo{venue: approvedVenue()}, &fakeCourtRepo{}, nil)

	err := svc.DeleteCourt(context.Background(), 10, ownerCaller)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
