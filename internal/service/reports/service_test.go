package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	reportRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/report"
	userRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/user"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

// Fakes

type fakeReportRepo struct {
	report        *domain.Report
	created       *domain.Report
	updatedStatus *domain.ReportStatus
}

func (f *fakeReportRepo) Create(_ context.Context, r *domain.Report) (*domain.Report, error) {
	created := *r
	f.created = &created
	return &created, nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*domain.Report, error) {
	if f.report == nil || f.report.ID != id {
		return nil, reportRepo.ErrReportNotFound
	}
	if f.updatedStatus != nil {
		updated := *f.report
		updated.Status = *f.updatedStatus
		return &updated, nil
	}
	return f.report, nil
}

func (f *fakeReportRepo) List(_ context.Context, _ domain.ReportsFilter) ([]*domain.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) UpdateStatus(_ context.Context, _ string, status domain.ReportStatus, _ *string) error {
	f.updatedStatus = &status
	return nil
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, userRepo.ErrUserNotFound
	}
	return f.user, nil
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

var reporter = domain.AuthUser{ID: 7, Role: domain.RolePlayer}

func pendingReport() *domain.Report {
	return &domain.Report{
		ID:         "9f1c7d2e-0000-0000-0000-000000000001",
		ReporterID: 7,
		TargetType: domain.ReportTargetFacility,
		TargetID:   5,
		TargetName: "Smash Arena",
		Reason:     "fake photos",
		Priority:   domain.ReportPriorityMedium,
		Status:     domain.ReportStatusPending,
	}
}

func newTestService(reports *fakeReportRepo, users *fakeUserRepo, venues *fakeVenueRepo) *Service {
	if reports == nil {
		reports = &fakeReportRepo{}
	}
	if users == nil {
		users = &fakeUserRepo{}
	}
	if venues == nil {
		venues = &fakeVenueRepo{}
	}
	return NewService(reports, users, venues, noopLogger{})
}

// Tests

func TestCreateReport_AgainstFacility(t *testing.T) {
	reports := &fakeReportRepo{}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 5, Name: "Smash Arena"}}
	svc := newTestService(reports, nil, venues)

	resp, err := svc.Create(context.Background(), &models.CreateReportRequest{
		TargetType: "facility",
		TargetID:   5,
		Reason:     "fake photos",
	}, reporter)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Smash Arena", resp.TargetName)
	assert.Equal(t, string(domain.ReportPriorityMedium), resp.Priority)
	assert.Equal(t, string(domain.ReportStatusPending), resp.Status)
	require.NotNil(t, reports.created)
	assert.Equal(t, int64(7), reports.created.ReporterID)
}

func TestCreateReport_AgainstUser(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 3, FullName: "Sam Renter"}}
	svc := newTestService(nil, users, nil)

	resp, err := svc.Create(context.Background(), &models.CreateReportRequest{
		TargetType: "user",
		TargetID:   3,
		Reason:     "no-show",
		Priority:   "high",
	}, reporter)
	require.NoError(t, err)

	assert.Equal(t, "Sam Renter", resp.TargetName)
	assert.Equal(t, string(domain.ReportPriorityHigh), resp.Priority)
}

func TestCreateReport_TargetNotFound(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateReportRequest{
		TargetType: "facility",
		TargetID:   5,
		Reason:     "fake photos",
	}, reporter)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestCreateReport_Validation(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateReportRequest{
		TargetType: "booking",
		TargetID:   5,
		Reason:     "x",
	}, reporter)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateReportRequest{
		TargetType: "facility",
		TargetID:   5,
	}, reporter)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveReport_RequiresNotes(t *testing.T) {
	svc := newTestService(&fakeReportRepo{report: pendingReport()}, nil, nil)

	_, err := svc.Resolve(context.Background(), pendingReport().ID, &models.CloseReportRequest{})
	assert.ErrorIs(t, err, ErrNotesRequired)
}

func TestResolveReport_Success(t *testing.T) {
	reports := &fakeReportRepo{report: pendingReport()}
	svc := newTestService(reports, nil, nil)

	resp, err := svc.Resolve(context.Background(), pendingReport().ID, &models.CloseReportRequest{
		AdminNotes: ptr.Ptr("facility owner warned"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReportStatusResolved), resp.Status)
}

func TestDismissReport_NotesOptional(t *testing.T) {
	reports := &fakeReportRepo{report: pendingReport()}
	svc := newTestService(reports, nil, nil)

	resp, err := svc.Dismiss(context.Background(), pendingReport().ID, &models.CloseReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReportStatusDismissed), resp.Status)
}

func TestCloseReport_AlreadyClosed(t *testing.T) {
	report := pendingReport()
	report.Status = domain.ReportStatusResolved
	svc := newTestService(&fakeReportRepo{report: report}, nil, nil)

	_, err := svc.Dismiss(context.Background(), report.ID, &models.CloseReportRequest{})
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestCloseReport_NotFound(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, nil, nil)

	_, err := svc.Dismiss(context.Background(), "missing", &models.CloseReportRequest{})
	assert.ErrorIs(t, err, ErrReportNotFound)
}
