package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	userRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/user"
	"github.com/quickcourt/quickcourt-backend/internal/service/users/models"
	"github.com/quickcourt/quickcourt-backend/pkg/ptr"
)

var testNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

// Fakes

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64

	verified      []int64
	updatedStatus *domain.UserStatus

	listResult []*domain.User
	listFilter *domain.UsersFilter
	countTotal int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: 100}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	created := *u
	created.ID = f.nextID
	f.nextID++
	f.byEmail[created.Email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	f.listFilter = &filter
	return f.listResult, nil
}

func (f *fakeUserRepo) Count(_ context.Context, _ domain.UsersFilter) (int, error) {
	return f.countTotal, nil
}

func (f *fakeUserRepo) SetVerified(_ context.Context, id int64) error {
	f.verified = append(f.verified, id)
	return nil
}

func (f *fakeUserRepo) SetOTP(_ context.Context, _ int64, _ string, _ sql.NullTime) error {
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, _ int64, status domain.UserStatus, _ *string) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ int64, _ string, _ *string) error {
	return nil
}

func (f *fakeUserRepo) TouchLastActive(_ context.Context, _ int64) error {
	return nil
}

type fakeBookingStats struct {
	stats domain.UserBookingStats
}

func (f fakeBookingStats) StatsByUser(_ context.Context, _ int64) (domain.UserBookingStats, error) {
	return f.stats, nil
}

type fakeTokens struct{}

func (fakeTokens) CreateAccessToken(_ int64, _ string, _ string) (string, error) {
	return "test-token", nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func verifiedUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:           1,
		Email:        "player@example.com",
		PasswordHash: mustHash(t, "s3cret-pass"),
		FullName:     "Pat Player",
		Role:         domain.RolePlayer,
		Status:       domain.UserStatusActive,
		IsVerified:   true,
	}
}

func newTestService(repo *fakeUserRepo) *Service {
	svc := NewService(repo, fakeBookingStats{}, fakeTokens{}, 10*time.Minute, noopLogger{})
	svc.timeProvider = fixedTime{testNow}
	return svc
}

func validSignup() *models.SignupRequest {
	return &models.SignupRequest{
		Email:    "New.Player@Example.com",
		Password: "s3cret-pass",
		FullName: "Pat Player",
		Role:     "player",
	}
}

// Tests

func TestSignup_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "new.player@example.com", resp.User.Email)
	assert.False(t, resp.User.IsVerified)

	stored := repo.byEmail["new.player@example.com"]
	require.NotNil(t, stored)
	require.NotNil(t, stored.OTPCode)
	assert.Len(t, *stored.OTPCode, 6)
	require.NotNil(t, stored.OTPExpiresAt)
	assert.Equal(t, testNow.Add(10*time.Minute), *stored.OTPExpiresAt)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
}

func TestSignup_CodeStaysOutOfTheResponse(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// The code lives only on the stored account (and the simulated email
	// log); verification has to come through the delivery channel.
	body, err := json.Marshal(resp)
	require.NoError(t, err)

	stored := repo.byEmail["new.player@example.com"]
	require.NotNil(t, stored.OTPCode)
	assert.NotContains(t, string(body), *stored.OTPCode)

	verified, err := svc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Email: "new.player@example.com",
		Code:  *stored.OTPCode,
	})
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
}

func TestSignup_RejectsAdminRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	req := validSignup()
	req.Role = "admin"

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	req := validSignup()
	req.Password = "short"

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{ID: 1, Email: "new.player@example.com"})
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyOTP_Success(t *testing.T) {
	expires := testNow.Add(5 * time.Minute)
	user := &domain.User{
		ID: 1, Email: "player@example.com",
		OTPCode: ptr.Ptr("123456"), OTPExpiresAt: &expires,
	}
	repo := newFakeUserRepo(user)
	svc := newTestService(repo)

	resp, err := svc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Email: "Player@Example.com",
		Code:  "123456",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsVerified)
	assert.Equal(t, []int64{1}, repo.verified)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	expires := testNow.Add(5 * time.Minute)
	repo := newFakeUserRepo(&domain.User{
		ID: 1, Email: "player@example.com",
		OTPCode: ptr.Ptr("123456"), OTPExpiresAt: &expires,
	})
	svc := newTestService(repo)

	_, err := svc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Email: "player@example.com",
		Code:  "654321",
	})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	expires := testNow.Add(-time.Minute)
	repo := newFakeUserRepo(&domain.User{
		ID: 1, Email: "player@example.com",
		OTPCode: ptr.Ptr("123456"), OTPExpiresAt: &expires,
	})
	svc := newTestService(repo)

	_, err := svc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Email: "player@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_AlreadyVerified(t *testing.T) {
	repo := newFakeUserRepo(verifiedUser(t))
	svc := newTestService(repo)

	_, err := svc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Email: "player@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo(verifiedUser(t))
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Player@Example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo(verifiedUser(t))
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "player@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Banned(t *testing.T) {
	user := verifiedUser(t)
	user.Status = domain.UserStatusBanned
	svc := newTestService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "player@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrBanned)
}

func TestLogin_NotVerified(t *testing.T) {
	user := verifiedUser(t)
	user.IsVerified = false
	svc := newTestService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "player@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestBan_RequiresReason(t *testing.T) {
	svc := newTestService(newFakeUserRepo(verifiedUser(t)))

	_, err := svc.Ban(context.Background(), 1, &models.BanUserRequest{})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestBan_RefusesAdmins(t *testing.T) {
	admin := verifiedUser(t)
	admin.Role = domain.RoleAdmin
	svc := newTestService(newFakeUserRepo(admin))

	_, err := svc.Ban(context.Background(), 1, &models.BanUserRequest{Reason: "spam"})
	assert.ErrorIs(t, err, ErrCannotBanAdmin)
}

func TestBan_Success(t *testing.T) {
	repo := newFakeUserRepo(verifiedUser(t))
	svc := newTestService(repo)

	resp, err := svc.Ban(context.Background(), 1, &models.BanUserRequest{Reason: "spam"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.UserStatusBanned), resp.Status)
	require.NotNil(t, resp.BanReason)
	assert.Equal(t, "spam", *resp.BanReason)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.UserStatusBanned, *repo.updatedStatus)
}

func TestUnban_Success(t *testing.T) {
	user := verifiedUser(t)
	user.Status = domain.UserStatusBanned
	user.BanReason = ptr.Ptr("spam")
	repo := newFakeUserRepo(user)
	svc := newTestService(repo)

	resp, err := svc.Unban(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.UserStatusActive), resp.Status)
	assert.Nil(t, resp.BanReason)
}

func TestUnban_NotFound(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Unban(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_EnrichedWithBookingStats(t *testing.T) {
	repo := newFakeUserRepo()
	repo.listResult = []*domain.User{verifiedUser(t)}
	repo.countTotal = 1

	svc := NewService(repo, fakeBookingStats{
		stats: domain.UserBookingStats{TotalBookings: 12, TotalSpent: 340.5},
	}, fakeTokens{}, 10*time.Minute, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListUsersRequest{Page: 1, Limit: 20})
	require.NoError(t, err)

	require.Len(t, resp.Users, 1)
	assert.Equal(t, 12, resp.Users[0].TotalBookings)
	assert.Equal(t, 340.5, resp.Users[0].TotalSpent)
}

func TestListUsers_ClampsPagingBeforeQueryAndCountsTotal(t *testing.T) {
	repo := newFakeUserRepo()
	repo.listResult = []*domain.User{verifiedUser(t)}
	repo.countTotal = 57

	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListUsersRequest{Page: 0, Limit: 0})
	require.NoError(t, err)

	// The clamped paging reaches the repository, not just the response
	require.NotNil(t, repo.listFilter)
	assert.Equal(t, 1, repo.listFilter.Page)
	assert.Equal(t, domain.DefaultPageSize, repo.listFilter.Limit)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, domain.DefaultPageSize, resp.Limit)

	// Total is the matching count, not the page size
	assert.Equal(t, 57, resp.Total)
	assert.Len(t, resp.Users, 1)
}

func TestListUsers_InvalidRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.List(context.Background(), &models.ListUsersRequest{Role: ptr.Ptr("superuser")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
