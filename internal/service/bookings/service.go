package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/booking"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/service/bookings/models"
)

// Service reads and cancels bookings.
// Creation lives in the create_booking use case; this service covers the
// simpler flows that need no transaction.
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService creates a bookings service
func NewService(bookingRepo BookingRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking.
// Visible to the booking's player, the venue's owner and admins.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.AuthUser) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, caller.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(ctx, booking, caller); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", caller.ID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings lists a user's booking history, optionally by status.
// Players see only their own history; admins see anyone's.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest, caller domain.AuthUser) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if caller.Role != domain.RoleAdmin && caller.ID != req.UserID {
		s.logger.Warn("GetUserBookings: user=%d may not list bookings of user=%d", caller.ID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVenueBookings lists a venue's bookings for the owner overview.
// Only the venue's owner and admins may call it.
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest, caller domain.AuthUser) (*models.BookingListResponse, error) {
	s.logger.Info("GetVenueBookings: fetching bookings for venue=%d, user=%d", req.VenueID, caller.ID)

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenueBookings: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenueBookings: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	if caller.Role != domain.RoleAdmin && venue.OwnerID != caller.ID {
		s.logger.Warn("GetVenueBookings: user=%d does not own venue id=%d", caller.ID, req.VenueID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVenueBookings: invalid filter for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenueBookings: successfully fetched %d bookings for venue=%d", len(bookings), req.VenueID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a confirmed booking.
// The booking's player, the venue's owner and admins may cancel. Completed
// and already cancelled bookings are rejected.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest, caller domain.AuthUser) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, caller.ID)

	if len(req.CancellationReason) > domain.MaxCancellationReason {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReason)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(ctx, booking, caller); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", caller.ID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkReadAccess allows the booking's player, the venue's owner and admins
func (s *Service) checkReadAccess(ctx context.Context, booking *domain.Booking, caller domain.AuthUser) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	if booking.UserID == caller.ID {
		return nil
	}

	if caller.Role == domain.RoleOwner {
		venue, err := s.venueRepo.GetByID(ctx, booking.VenueID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: checkReadAccess - repository error: %v", ErrInternal, err)
		}
		if venue.OwnerID == caller.ID {
			return nil
		}
	}

	return ErrAccessDenied
}
