package users

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	userRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/user"
	"github.com/quickcourt/quickcourt-backend/internal/service/users/models"
)

const otpLength = 6

// Service handles accounts: signup with OTP verification, login, profile
// edits and the admin moderation flow.
type Service struct {
	userRepo     UserRepository
	bookingStats BookingStatsRepository
	tokens       TokenManager
	otpTTL       time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a users service
func NewService(
	userRepo UserRepository,
	bookingStats BookingStatsRepository,
	tokens TokenManager,
	otpTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		bookingStats: bookingStats,
		tokens:       tokens,
		otpTTL:       otpTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Signup registers a player or facility owner account. The account starts
// unverified; a one-time code is generated and (while email delivery is
// simulated) logged server-side. The code never reaches the response, so
// verification requires the delivery channel.
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	s.logger.Info("Signup: email=%s, role=%s", req.Email, req.Role)

	if err := validateSignupRequest(req); err != nil {
		s.logger.Warn("Signup: validation failed: %v", err)
		return nil, err
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil || role == domain.RoleAdmin {
		// Admin accounts are provisioned out of band, never via signup
		s.logger.Warn("Signup: rejected role=%s for email=%s", req.Role, req.Email)
		return nil, fmt.Errorf("%w: role must be player or facility_owner", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	otp, err := generateOTP()
	if err != nil {
		s.logger.Error("Signup: failed to generate otp: %v", err)
		return nil, fmt.Errorf("%w: failed to generate otp: %v", ErrInternal, err)
	}
	otpExpiresAt := s.timeProvider.Now().Add(s.otpTTL)

	user := &domain.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Role:         role,
		Status:       domain.UserStatusActive,
		IsVerified:   false,
		OTPCode:      &otp,
		OTPExpiresAt: &otpExpiresAt,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Signup: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Signup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	// Simulated email delivery
	s.logger.Info("Signup: verification code for user id=%d is %s", created.ID, otp)

	return &models.SignupResponse{
		User: models.FromDomainUser(created),
	}, nil
}

// VerifyOTP confirms the signup code and activates the account
func (s *Service) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.UserResponse, error) {
	s.logger.Info("VerifyOTP: email=%s", req.Email)

	if req.Email == "" || req.Code == "" {
		return nil, fmt.Errorf("%w: email and code are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("VerifyOTP: email=%s not found", req.Email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("VerifyOTP: repository error: %v", err)
		return nil, fmt.Errorf("%w: VerifyOTP - repository error: %v", ErrInternal, err)
	}

	if user.IsVerified {
		s.logger.Warn("VerifyOTP: user id=%d already verified", user.ID)
		return nil, ErrAlreadyVerified
	}

	now := s.timeProvider.Now()
	if user.OTPCode == nil || *user.OTPCode != req.Code ||
		user.OTPExpiresAt == nil || now.After(*user.OTPExpiresAt) {
		s.logger.Warn("VerifyOTP: invalid or expired code for user id=%d", user.ID)
		return nil, ErrInvalidOTP
	}

	if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
		s.logger.Error("VerifyOTP: failed to mark user id=%d verified: %v", user.ID, err)
		return nil, fmt.Errorf("%w: VerifyOTP - repository error: %v", ErrInternal, err)
	}

	user.IsVerified = true
	user.OTPCode = nil
	user.OTPExpiresAt = nil

	s.logger.Info("VerifyOTP: user id=%d verified", user.ID)
	return models.FromDomainUser(user), nil
}

// Login checks the credentials and issues an access token.
// Unverified accounts must finish OTP verification first; banned and
// suspended accounts are refused.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: email=%s not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	if user.IsBanned() {
		s.logger.Warn("Login: user id=%d is %s", user.ID, user.Status)
		return nil, ErrBanned
	}

	if !user.CanLogIn() {
		s.logger.Warn("Login: user id=%d is not verified", user.ID)
		return nil, ErrNotVerified
	}

	token, err := s.tokens.CreateAccessToken(user.ID, string(user.Role), user.Email)
	if err != nil {
		s.logger.Error("Login: failed to create token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - token error: %v", ErrInternal, err)
	}

	if err := s.userRepo.TouchLastActive(ctx, user.ID); err != nil {
		// Non-fatal; the session is valid either way
		s.logger.Warn("Login: failed to touch last active for user id=%d: %v", user.ID, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// GetProfile returns the caller's own account
func (s *Service) GetProfile(ctx context.Context, caller domain.AuthUser) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// UpdateProfile edits the caller's own profile fields
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, caller domain.AuthUser) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: user=%d", caller.ID)

	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateProfile(ctx, caller.ID, req.FullName, req.AvatarURL); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	return s.GetProfile(ctx, caller)
}

// List is the admin user listing, enriched with booking aggregates
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error) {
	s.logger.Info("ListUsers: role=%v, status=%v, search=%v, page=%d", req.Role, req.Status, req.Search, req.Page)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}

	filter := domain.UsersFilter{
		Search: req.Search,
		Page:   page,
		Limit:  limit,
	}

	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
		filter.Role = &role
	}
	if req.Status != nil {
		status, err := toUserStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListUsers: count repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	out := make([]*models.AdminUserResponse, 0, len(users))
	for _, u := range users {
		stats, err := s.bookingStats.StatsByUser(ctx, u.ID)
		if err != nil {
			s.logger.Error("ListUsers: failed to get stats for user=%d: %v", u.ID, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		out = append(out, &models.AdminUserResponse{
			UserResponse:  *models.FromDomainUser(u),
			TotalBookings: stats.TotalBookings,
			TotalSpent:    stats.TotalSpent,
		})
	}

	s.logger.Info("ListUsers: successfully fetched %d of %d users", len(out), total)
	return &models.UserListResponse{
		Users: out,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

// Ban bans an account. A reason is required; admins cannot be banned.
func (s *Service) Ban(ctx context.Context, userID int64, req *models.BanUserRequest) (*models.UserResponse, error) {
	s.logger.Info("BanUser: user=%d", userID)

	if req.Reason == "" {
		s.logger.Warn("BanUser: reason missing for user=%d", userID)
		return nil, ErrReasonRequired
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("BanUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Ban - repository error: %v", ErrInternal, err)
	}

	if user.Role == domain.RoleAdmin {
		s.logger.Warn("BanUser: refusing to ban admin user=%d", userID)
		return nil, ErrCannotBanAdmin
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, domain.UserStatusBanned, &req.Reason); err != nil {
		s.logger.Error("BanUser: failed to update status for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Ban - repository error: %v", ErrInternal, err)
	}

	user.Status = domain.UserStatusBanned
	user.BanReason = &req.Reason

	s.logger.Info("BanUser: user id=%d banned", userID)
	return models.FromDomainUser(user), nil
}

// Unban restores an account to active and clears the ban reason
func (s *Service) Unban(ctx context.Context, userID int64) (*models.UserResponse, error) {
	s.logger.Info("UnbanUser: user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("UnbanUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Unban - repository error: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, domain.UserStatusActive, nil); err != nil {
		s.logger.Error("UnbanUser: failed to update status for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Unban - repository error: %v", ErrInternal, err)
	}

	user.Status = domain.UserStatusActive
	user.BanReason = nil

	s.logger.Info("UnbanUser: user id=%d unbanned", userID)
	return models.FromDomainUser(user), nil
}

// ResendOTP generates a fresh verification code for an unverified account
func (s *Service) ResendOTP(ctx context.Context, email string) error {
	s.logger.Info("ResendOTP: email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: ResendOTP - repository error: %v", ErrInternal, err)
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("%w: failed to generate otp: %v", ErrInternal, err)
	}

	expiresAt := sql.NullTime{Time: s.timeProvider.Now().Add(s.otpTTL), Valid: true}
	if err := s.userRepo.SetOTP(ctx, user.ID, otp, expiresAt); err != nil {
		return fmt.Errorf("%w: ResendOTP - repository error: %v", ErrInternal, err)
	}

	// Simulated email delivery
	s.logger.Info("ResendOTP: verification code for user id=%d is %s", user.ID, otp)
	return nil
}

func validateSignupRequest(req *models.SignupRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	return nil
}

func toUserStatus(s string) (domain.UserStatus, error) {
	switch domain.UserStatus(s) {
	case domain.UserStatusActive, domain.UserStatusBanned, domain.UserStatusSuspended:
		return domain.UserStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown user status %q", ErrInvalidInput, s)
	}
}

// generateOTP returns a 6 digit numeric code from crypto/rand
func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpLength, n), nil
}
