package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	reportRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/report"
	userRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/user"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/reports/models"
)

// Service files and moderates reports
type Service struct {
	reportRepo ReportRepository
	userRepo   UserRepository
	venueRepo  VenueRepository
	logger     Logger
}

// NewService creates a reports service
func NewService(
	reportRepo ReportRepository,
	userRepo UserRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		venueRepo:  venueRepo,
		logger:     logger,
	}
}

// Create files a report. The target's display name is denormalized onto the
// row so the admin queue renders without joins even after the target is
// renamed or removed.
func (s *Service) Create(ctx context.Context, req *models.CreateReportRequest, caller domain.AuthUser) (*models.ReportResponse, error) {
	s.logger.Info("CreateReport: reporter=%d, target=%s/%d", caller.ID, req.TargetType, req.TargetID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateReport: validation failed: %v", err)
		return nil, err
	}

	targetName, err := s.resolveTargetName(ctx, domain.ReportTargetType(req.TargetType), req.TargetID)
	if err != nil {
		return nil, err
	}

	priority := domain.ReportPriorityMedium
	if req.Priority != "" {
		priority, err = toPriority(req.Priority)
		if err != nil {
			return nil, err
		}
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		ReporterID:  caller.ID,
		TargetType:  domain.ReportTargetType(req.TargetType),
		TargetID:    req.TargetID,
		TargetName:  targetName,
		Reason:      req.Reason,
		Description: req.Description,
		Priority:    priority,
		Status:      domain.ReportStatusPending,
	}

	created, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		s.logger.Error("CreateReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReport: successfully created report id=%s", created.ID)
	return models.FromDomainReport(created), nil
}

// List is the admin report queue, newest first
func (s *Service) List(ctx context.Context, req *models.ListReportsRequest) (*models.ReportListResponse, error) {
	s.logger.Info("ListReports: status=%v, priority=%v, page=%d", req.Status, req.Priority, req.Page)

	filter := domain.ReportsFilter{
		Page:  req.Page,
		Limit: req.Limit,
	}

	if req.Status != nil {
		status, err := toStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if req.Priority != nil {
		priority, err := toPriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &priority
	}

	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReports: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}

	s.logger.Info("ListReports: successfully fetched %d reports", len(reports))
	return &models.ReportListResponse{
		Reports: models.FromDomainReports(reports),
		Page:    page,
		Limit:   limit,
		Total:   len(reports),
	}, nil
}

// Resolve closes a report as handled. Admin notes are required so the
// resolution is auditable.
func (s *Service) Resolve(ctx context.Context, reportID string, req *models.CloseReportRequest) (*models.ReportResponse, error) {
	s.logger.Info("ResolveReport: report=%s", reportID)

	if req.AdminNotes == nil || *req.AdminNotes == "" {
		s.logger.Warn("ResolveReport: notes missing for report=%s", reportID)
		return nil, ErrNotesRequired
	}

	return s.close(ctx, reportID, domain.ReportStatusResolved, req.AdminNotes)
}

// Dismiss closes a report without action. Notes are optional.
func (s *Service) Dismiss(ctx context.Context, reportID string, req *models.CloseReportRequest) (*models.ReportResponse, error) {
	s.logger.Info("DismissReport: report=%s", reportID)
	return s.close(ctx, reportID, domain.ReportStatusDismissed, req.AdminNotes)
}

func (s *Service) close(ctx context.Context, reportID string, status domain.ReportStatus, notes *string) (*models.ReportResponse, error) {
	if notes != nil && len(*notes) > domain.MaxAdminNotesLength {
		return nil, fmt.Errorf("%w: adminNotes exceeds %d characters", ErrInvalidInput, domain.MaxAdminNotesLength)
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, reportRepo.ErrReportNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("%w: close - repository error: %v", ErrInternal, err)
	}

	if !report.IsOpen() {
		s.logger.Warn("CloseReport: report id=%s is already %s", reportID, report.Status)
		return nil, ErrNotOpen
	}

	if err := s.reportRepo.UpdateStatus(ctx, reportID, status, notes); err != nil {
		s.logger.Error("CloseReport: failed to update status for report=%s: %v", reportID, err)
		return nil, fmt.Errorf("%w: close - repository error: %v", ErrInternal, err)
	}

	closed, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: close - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CloseReport: report id=%s is now %s", reportID, status)
	return models.FromDomainReport(closed), nil
}

func (s *Service) resolveTargetName(ctx context.Context, targetType domain.ReportTargetType, targetID int64) (string, error) {
	switch targetType {
	case domain.ReportTargetUser:
		user, err := s.userRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return "", ErrTargetNotFound
			}
			return "", fmt.Errorf("%w: resolveTargetName - repository error: %v", ErrInternal, err)
		}
		return user.FullName, nil

	case domain.ReportTargetFacility:
		venue, err := s.venueRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				return "", ErrTargetNotFound
			}
			return "", fmt.Errorf("%w: resolveTargetName - repository error: %v", ErrInternal, err)
		}
		return venue.Name, nil

	default:
		return "", fmt.Errorf("%w: unknown target type %q", ErrInvalidInput, targetType)
	}
}

func validateCreateRequest(req *models.CreateReportRequest) error {
	switch domain.ReportTargetType(req.TargetType) {
	case domain.ReportTargetUser, domain.ReportTargetFacility:
	default:
		return fmt.Errorf("%w: targetType must be user or facility", ErrInvalidInput)
	}

	if req.TargetID <= 0 {
		return fmt.Errorf("%w: targetId must be positive", ErrInvalidInput)
	}
	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

func toPriority(s string) (domain.ReportPriority, error) {
	switch domain.ReportPriority(s) {
	case domain.ReportPriorityLow, domain.ReportPriorityMedium, domain.ReportPriorityHigh:
		return domain.ReportPriority(s), nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, s)
	}
}

func toStatus(s string) (domain.ReportStatus, error) {
	switch domain.ReportStatus(s) {
	case domain.ReportStatusPending, domain.ReportStatusResolved, domain.ReportStatusDismissed:
		return domain.ReportStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown report status %q", ErrInvalidInput, s)
	}
}
