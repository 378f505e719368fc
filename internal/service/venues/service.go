package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

// Service manages venues, their courts and the admin approval flow
type Service struct {
	venueRepo   VenueRepository
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a venues service
func NewService(
	venueRepo VenueRepository,
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:   venueRepo,
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create registers a new venue in pending status. Every new venue goes
// through admin review before players can see it.
func (s *Service) Create(ctx context.Context, req *models.VenueRequest, caller domain.AuthUser) (*models.VenueResponse, error) {
	s.logger.Info("CreateVenue: owner=%d, name=%q", caller.ID, req.Name)

	if err := validateVenueRequest(req); err != nil {
		s.logger.Warn("CreateVenue: validation failed: %v", err)
		return nil, err
	}

	venue := &domain.Venue{
		OwnerID:     caller.ID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Sports:      req.Sports,
		Amenities:   req.Amenities,
		Photos:      req.Photos,
		Status:      domain.VenueStatusPending,
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("CreateVenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVenue: successfully created venue id=%d, pending review", created.ID)
	return models.FromDomainVenue(created), nil
}

// Update edits a venue. Owners edit their own venues; admins edit any.
func (s *Service) Update(ctx context.Context, venueID int64, req *models.VenueRequest, caller domain.AuthUser) (*models.VenueResponse, error) {
	s.logger.Info("UpdateVenue: venue=%d, user=%d", venueID, caller.ID)

	if err := validateVenueRequest(req); err != nil {
		s.logger.Warn("UpdateVenue: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.getOwnedVenue(ctx, venueID, caller)
	if err != nil {
		return nil, err
	}

	venue.Name = req.Name
	venue.Description = req.Description
	venue.Address = req.Address
	venue.Sports = req.Sports
	venue.Amenities = req.Amenities
	venue.Photos = req.Photos

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		s.logger.Error("UpdateVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateVenue: successfully updated venue id=%d", venueID)
	return models.FromDomainVenue(venue), nil
}

// GetByID fetches the venue page with its courts.
// Anonymous callers and players see approved venues only; the owner and
// admins see the venue in any status. caller is nil for anonymous requests.
func (s *Service) GetByID(ctx context.Context, venueID int64, caller *domain.AuthUser) (*models.VenueDetailResponse, error) {
	s.logger.Info("GetVenue: fetching venue id=%d", venueID)

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	privileged := caller != nil && (caller.Role == domain.RoleAdmin || caller.ID == venue.OwnerID)
	if !venue.IsApproved() && !privileged {
		s.logger.Warn("GetVenue: venue id=%d not visible (status=%s)", venueID, venue.Status)
		return nil, ErrVenueNotVisible
	}

	courts, err := s.courtRepo.GetByVenueID(ctx, venueID, privileged)
	if err != nil {
		s.logger.Error("GetVenue: failed to get courts for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenue: successfully fetched venue id=%d with %d courts", venueID, len(courts))
	return &models.VenueDetailResponse{
		VenueResponse: *models.FromDomainVenue(venue),
		Courts:        models.FromDomainCourts(courts),
	}, nil
}

// List is the public venue listing: approved venues only, with search,
// sport and price filters, sorting and pagination.
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	s.logger.Info("ListVenues: search=%v, sport=%v, sort=%s, page=%d", req.Search, req.Sport, req.Sort, req.Page)

	status := domain.VenueStatusApproved
	filter := domain.VenuesFilter{
		Search:   req.Search,
		Sport:    req.Sport,
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		Status:   &status,
		Sort:     domain.VenueSort(req.Sort),
		Page:     req.Page,
		Limit:    req.Limit,
	}

	listings, err := s.venueRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
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

	s.logger.Info("ListVenues: successfully fetched %d venues", len(listings))
	return &models.VenueListResponse{
		Venues: models.FromDomainListings(listings),
		Page:   page,
		Limit:  limit,
		Total:  len(listings),
	}, nil
}

// ListOwned lists the caller's venues for the owner dashboard, any status
func (s *Service) ListOwned(ctx context.Context, caller domain.AuthUser) (*models.VenueListResponse, error) {
	s.logger.Info("ListOwnedVenues: owner=%d", caller.ID)

	listings, err := s.venueRepo.List(ctx, domain.VenuesFilter{
		OwnerID: &caller.ID,
		Sort:    domain.VenueSortName,
		Page:    1,
		Limit:   domain.MaxPageSize,
	})
	if err != nil {
		s.logger.Error("ListOwnedVenues: repository error for owner=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: ListOwned - repository error: %v", ErrInternal, err)
	}

	return &models.VenueListResponse{
		Venues: models.FromDomainListings(listings),
		Page:   1,
		Limit:  domain.MaxPageSize,
		Total:  len(listings),
	}, nil
}

// ListByStatus is the admin facility queue, newest submissions first
func (s *Service) ListByStatus(ctx context.Context, status string, page, limit int) (*models.VenueListResponse, error) {
	s.logger.Info("ListVenuesByStatus: status=%s, page=%d", status, page)

	domainStatus, err := toVenueStatus(status)
	if err != nil {
		s.logger.Warn("ListVenuesByStatus: invalid status=%s", status)
		return nil, err
	}

	listings, err := s.venueRepo.List(ctx, domain.VenuesFilter{
		Status: &domainStatus,
		Sort:   domain.VenueSortName,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error("ListVenuesByStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByStatus - repository error: %v", ErrInternal, err)
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}

	return &models.VenueListResponse{
		Venues: models.FromDomainListings(listings),
		Page:   page,
		Limit:  limit,
		Total:  len(listings),
	}, nil
}

// Home feeds the landing page: top rated venues and sport popularity
func (s *Service) Home(ctx context.Context) (*models.HomeResponse, error) {
	s.logger.Info("Home: building landing page data")

	venues, err := s.venueRepo.PopularVenues(ctx, domain.HomePopularVenuesLimit)
	if err != nil {
		s.logger.Error("Home: failed to get popular venues: %v", err)
		return nil, fmt.Errorf("%w: Home - repository error: %v", ErrInternal, err)
	}

	sports, err := s.venueRepo.PopularSports(ctx)
	if err != nil {
		s.logger.Error("Home: failed to get popular sports: %v", err)
		return nil, fmt.Errorf("%w: Home - repository error: %v", ErrInternal, err)
	}

	return &models.HomeResponse{
		PopularVenues: models.FromDomainListings(venues),
		PopularSports: models.FromDomainSports(sports),
	}, nil
}

// Approve moves a pending venue to approved. Comments are optional.
func (s *Service) Approve(ctx context.Context, venueID int64, req *models.ModerateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("ApproveVenue: venue=%d", venueID)
	return s.moderate(ctx, venueID, domain.VenueStatusApproved, req.Comments)
}

// Reject moves a pending venue to rejected. Comments are required so the
// owner knows what to fix before resubmitting.
func (s *Service) Reject(ctx context.Context, venueID int64, req *models.ModerateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("RejectVenue: venue=%d", venueID)

	if req.Comments == nil || *req.Comments == "" {
		s.logger.Warn("RejectVenue: comments missing for venue=%d", venueID)
		return nil, ErrCommentsRequired
	}

	return s.moderate(ctx, venueID, domain.VenueStatusRejected, req.Comments)
}

func (s *Service) moderate(ctx context.Context, venueID int64, status domain.VenueStatus, comments *string) (*models.VenueResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: moderate - repository error: %v", ErrInternal, err)
	}

	if !venue.IsPending() {
		s.logger.Warn("ModerateVenue: venue id=%d is not pending (status=%s)", venueID, venue.Status)
		return nil, ErrNotPending
	}

	if err := s.venueRepo.UpdateStatus(ctx, venueID, status, comments); err != nil {
		s.logger.Error("ModerateVenue: failed to update status for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: moderate - repository error: %v", ErrInternal, err)
	}

	venue.Status = status
	venue.AdminComments = comments

	s.logger.Info("ModerateVenue: venue id=%d is now %s", venueID, status)
	return models.FromDomainVenue(venue), nil
}

// CreateCourt adds a court to one of the caller's venues
func (s *Service) CreateCourt(ctx context.Context, venueID int64, req *models.CourtRequest, caller domain.AuthUser) (*models.CourtResponse, error) {
	s.logger.Info("CreateCourt: venue=%d, user=%d, name=%q", venueID, caller.ID, req.Name)

	openHour, closeHour, err := validateCourtRequest(req)
	if err != nil {
		s.logger.Warn("CreateCourt: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.getOwnedVenue(ctx, venueID, caller); err != nil {
		return nil, err
	}

	status := domain.CourtStatusActive
	if req.Status != nil {
		status, err = toCourtStatus(*req.Status)
		if err != nil {
			return nil, err
		}
	}

	court := &domain.Court{
		VenueID:      venueID,
		Name:         req.Name,
		Sport:        req.Sport,
		PricePerHour: req.PricePerHour,
		OpenHour:     openHour,
		CloseHour:    closeHour,
		Status:       status,
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("CreateCourt: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: successfully created court id=%d in venue=%d", created.ID, venueID)
	return models.FromDomainCourt(created), nil
}

// UpdateCourt edits a court of one of the caller's venues.
// Price changes apply to new bookings only; existing bookings keep the
// price captured at creation.
func (s *Service) UpdateCourt(ctx context.Context, courtID int64, req *models.CourtRequest, caller domain.AuthUser) (*models.CourtResponse, error) {
	s.logger.Info("UpdateCourt: court=%d, user=%d", courtID, caller.ID)

	openHour, closeHour, err := validateCourtRequest(req)
	if err != nil {
		s.logger.Warn("UpdateCourt: validation failed: %v", err)
		return nil, err
	}

	court, err := s.getOwnedCourt(ctx, courtID, caller)
	if err != nil {
		return nil, err
	}

	court.Name = req.Name
	court.Sport = req.Sport
	court.PricePerHour = req.PricePerHour
	court.OpenHour = openHour
	court.CloseHour = closeHour
	if req.Status != nil {
		status, err := toCourtStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		court.Status = status
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		s.logger.Error("UpdateCourt: repository error for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: UpdateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCourt: successfully updated court id=%d", courtID)
	return models.FromDomainCourt(court), nil
}

// DeleteCourt soft-deletes a court. Refused while the court still has
// upcoming active bookings; the owner must cancel or wait them out.
func (s *Service) DeleteCourt(ctx context.Context, courtID int64, caller domain.AuthUser) error {
	s.logger.Info("DeleteCourt: court=%d, user=%d", courtID, caller.ID)

	if _, err := s.getOwnedCourt(ctx, courtID, caller); err != nil {
		return err
	}

	today := time.Now().Truncate(24 * time.Hour)
	hasBookings, err := s.bookingRepo.HasActiveFromDate(ctx, courtID, today)
	if err != nil {
		s.logger.Error("DeleteCourt: failed to check bookings for court=%d: %v", courtID, err)
		return fmt.Errorf("%w: DeleteCourt - repository error: %v", ErrInternal, err)
	}

	if hasBookings {
		s.logger.Warn("DeleteCourt: court id=%d has upcoming bookings", courtID)
		return ErrCourtHasBookings
	}

	if err := s.courtRepo.Deactivate(ctx, courtID); err != nil {
		s.logger.Error("DeleteCourt: repository error for court=%d: %v", courtID, err)
		return fmt.Errorf("%w: DeleteCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCourt: successfully deactivated court id=%d", courtID)
	return nil
}

// getOwnedVenue loads the venue and checks the caller owns it (admins pass)
func (s *Service) getOwnedVenue(ctx context.Context, venueID int64, caller domain.AuthUser) (*domain.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: getOwnedVenue - repository error: %v", ErrInternal, err)
	}

	if caller.Role != domain.RoleAdmin && venue.OwnerID != caller.ID {
		return nil, ErrAccessDenied
	}

	return venue, nil
}

// getOwnedCourt loads the court and checks the caller owns its venue
func (s *Service) getOwnedCourt(ctx context.Context, courtID int64, caller domain.AuthUser) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: getOwnedCourt - repository error: %v", ErrInternal, err)
	}

	if _, err := s.getOwnedVenue(ctx, court.VenueID, caller); err != nil {
		return nil, err
	}

	return court, nil
}
