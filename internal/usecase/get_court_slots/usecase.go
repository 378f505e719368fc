package get_court_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
)

// UseCase computes the slot grid for one court and date
type UseCase struct {
	bookings BookingRepository
	courts   CourtRepository
	blocks   BlockRepository
	logger   Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookings BookingRepository,
	courts CourtRepository,
	blocks BlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings: bookings,
		courts:   courts,
		blocks:   blocks,
		logger:   logger,
	}
}

// Execute builds the grid. The result is a pure function of the court's
// operating window, its status, the active bookings and the blocks on the
// date: the same inputs always produce the same grid.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCourtSlots: venue=%d, court=%d, date=%s",
		req.VenueID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCourtSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the court and check it belongs to the requested venue
	court, err := uc.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetCourtSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetCourtSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if court.VenueID != req.VenueID {
		uc.logger.Warn("GetCourtSlots: court id=%d belongs to venue id=%d, not %d",
			court.ID, court.VenueID, req.VenueID)
		return nil, ErrCourtNotInVenue
	}

	filter := domain.CourtDayFilter{
		CourtID: req.CourtID,
		Date:    req.Date,
	}

	// 3. Active bookings on the date
	bookings, err := uc.bookings.GetByCourtAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCourtSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Owner blocks on the date
	blocks, err := uc.blocks.GetByCourtAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCourtSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 5. Project everything onto the hour grid
	slots := buildSlotGrid(court, bookings, blocks)

	uc.logger.Info("GetCourtSlots: court id=%d, date=%s, %d slots",
		court.ID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		VenueID:      court.VenueID,
		CourtID:      court.ID,
		Date:         req.Date,
		PricePerHour: court.PricePerHour,
		Slots:        slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
