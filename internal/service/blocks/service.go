package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	blockRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/block"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
)

// Service removes owner blocks. Creation lives in the create_block use
// case; removal needs only an ownership check.
type Service struct {
	blockRepo BlockRepository
	courtRepo CourtRepository
	venueRepo VenueRepository
	logger    Logger
}

// NewService creates a blocks service
func NewService(
	blockRepo BlockRepository,
	courtRepo CourtRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		courtRepo: courtRepo,
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Delete removes a block, reopening the slot for booking
func (s *Service) Delete(ctx context.Context, blockID int64, caller domain.AuthUser) error {
	s.logger.Info("DeleteBlock: block=%d, user=%d", blockID, caller.ID)

	block, err := s.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", blockID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if caller.Role != domain.RoleAdmin {
		court, err := s.courtRepo.GetByID(ctx, block.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		venue, err := s.venueRepo.GetByID(ctx, court.VenueID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if venue.OwnerID != caller.ID {
			s.logger.Warn("DeleteBlock: user=%d does not own venue id=%d", caller.ID, venue.ID)
			return ErrAccessDenied
		}
	}

	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: failed to delete block=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d", blockID)
	return nil
}
