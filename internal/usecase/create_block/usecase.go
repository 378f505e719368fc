package create_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	blockRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/block"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// UseCase places an owner block on one slot
type UseCase struct {
	bookings  BookingRepository
	courts    CourtRepository
	venues    VenueRepository
	blocks    BlockRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookings BookingRepository,
	courts CourtRepository,
	venues VenueRepository,
	blocks BlockRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:  bookings,
		courts:    courts,
		venues:    venues,
		blocks:    blocks,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute places the block.
// The booking check and the insert run in one serializable transaction:
// a player booking the hour concurrently either lands before the check and
// rejects the block, or conflicts on the locked day and retries against the
// new block.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlock: owner=%d, court=%d, date=%s, start=%s, kind=%s",
		req.OwnerID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.Kind)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	hour, err := req.StartTime.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: start time must be a whole hour: %v", ErrInvalidInput, err)
	}

	// 2. Load the court
	court, err := uc.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBlock: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBlock: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. The caller must own the court's venue
	venue, err := uc.venues.GetByID(ctx, court.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Error("CreateBlock: venue id=%d not found for court id=%d", court.VenueID, court.ID)
			return nil, fmt.Errorf("%w: venue missing for court", ErrInternal)
		}
		uc.logger.Error("CreateBlock: failed to get venue id=%d: %v", court.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if venue.OwnerID != req.OwnerID {
		uc.logger.Warn("CreateBlock: owner=%d does not own venue id=%d", req.OwnerID, venue.ID)
		return nil, ErrNotCourtOwner
	}

	// 4. The hour must fall inside the operating window
	if !court.ContainsWindow(hour, 1) {
		uc.logger.Warn("CreateBlock: hour %d outside operating hours [%d, %d)",
			hour, court.OpenHour, court.CloseHour)
		return nil, ErrOutsideOperatingHours
	}

	var result *domain.SlotBlock

	// 5. Check for a covering booking and insert atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.CourtDayFilter{
			CourtID: req.CourtID,
			Date:    req.Date,
		}

		// 5.1. An active booking on the hour always wins over a block
		bookings, err := uc.bookings.GetByCourtAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, booking := range bookings {
			if booking.IsActive() && booking.CoversHour(hour) {
				uc.logger.Warn("CreateBlock: hour %d covered by booking id=%d", hour, booking.ID)
				return ErrHourBooked
			}
		}

		// 5.2. Insert; the unique slot index catches a double block
		block := &domain.SlotBlock{
			CourtID:   req.CourtID,
			BlockDate: req.Date,
			Hour:      hour,
			Kind:      domain.BlockKind(req.Kind),
			Reason:    req.Reason,
			CreatedBy: req.OwnerID,
		}

		created, err := uc.blocks.Create(txCtx, block)
		if err != nil {
			if errors.Is(err, blockRepo.ErrBlockExists) {
				uc.logger.Warn("CreateBlock: slot already blocked on court id=%d", req.CourtID)
				return ErrAlreadyBlocked
			}
			uc.logger.Error("CreateBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBlock: successfully created block id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		CourtID:   result.CourtID,
		Date:      result.BlockDate,
		StartTime: types.NewTimeStringFromHour(result.Hour),
		EndTime:   types.NewTimeStringFromHour(result.Hour + 1),
		Kind:      string(result.Kind),
		Reason:    result.Reason,
		CreatedAt: result.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	switch domain.BlockKind(req.Kind) {
	case domain.BlockKindBlocked, domain.BlockKindMaintenance:
	default:
		return fmt.Errorf("%w: kind must be blocked or maintenance", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
