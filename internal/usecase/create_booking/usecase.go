package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	bookingRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/booking"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
	"github.com/quickcourt/quickcourt-backend/internal/integrations/paymentpage"
	"github.com/quickcourt/quickcourt-backend/pkg/types"

	"github.com/google/uuid"
)

// Limits are the booking policy knobs loaded from config
type Limits struct {
	MaxDurationHours   int
	AdvanceBookingDays int
}

// UseCase creates a booking on one court
type UseCase struct {
	bookings     BookingRepository
	courts       CourtRepository
	venues       VenueRepository
	blocks       BlockRepository
	paymentPage  PaymentPageBuilder
	txManager    TransactionManager
	limits       Limits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookings BookingRepository,
	courts CourtRepository,
	venues VenueRepository,
	blocks BlockRepository,
	paymentPage PaymentPageBuilder,
	txManager TransactionManager,
	limits Limits,
	logger Logger,
) *UseCase {
	if limits.MaxDurationHours <= 0 {
		limits.MaxDurationHours = domain.DefaultMaxDurationHours
	}

	return &UseCase{
		bookings:     bookings,
		courts:       courts,
		venues:       venues,
		blocks:       blocks,
		paymentPage:  paymentPage,
		txManager:    txManager,
		limits:       limits,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a booking.
// The availability check and the insert run in one serializable transaction
// with the court's day locked FOR UPDATE, so two concurrent requests for the
// same slot cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, start=%s, hours=%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Validate request shape
	if err := validateRequest(req, uc.limits.MaxDurationHours); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	startHour, err := req.StartTime.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: start time must be a whole hour: %v", ErrInvalidInput, err)
	}

	// 2. Replay a previous submission carrying the same idempotency key
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		existing, err := uc.bookings.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err == nil {
			uc.logger.Info("CreateBooking: replaying booking id=%d for idempotency key", existing.ID)
			return uc.buildResponse(existing)
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: idempotency lookup failed: %v", err)
			return nil, fmt.Errorf("%w: idempotency lookup: %v", ErrInternal, err)
		}
	}

	now := uc.timeProvider.Now()

	// 3. Validate the booking date against the advance window
	if err := validateDate(req.Date, now, uc.limits.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Load the court and check it accepts bookings
	court, err := uc.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsBookable() {
		uc.logger.Warn("CreateBooking: court id=%d is not bookable (status=%s)", court.ID, court.Status)
		return nil, ErrCourtNotBookable
	}

	// 5. The window must fit inside the court's operating hours
	if !court.ContainsWindow(startHour, req.DurationHours) {
		uc.logger.Warn("CreateBooking: window %d+%dh outside operating hours [%d, %d)",
			startHour, req.DurationHours, court.OpenHour, court.CloseHour)
		return nil, ErrOutsideOperatingHours
	}

	// 6. Load the venue; only approved venues take bookings
	venue, err := uc.venues.GetByID(ctx, court.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", court.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", court.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsApproved() {
		uc.logger.Warn("CreateBooking: venue id=%d is not approved (status=%s)", venue.ID, venue.Status)
		return nil, ErrVenueNotApproved
	}

	idempotencyKey := uuid.NewString()
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		idempotencyKey = *req.IdempotencyKey
	}

	var result *domain.Booking

	// 7. Check availability and insert atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.CourtDayFilter{
			CourtID: req.CourtID,
			Date:    req.Date,
		}

		// 7.1. Active bookings on this court and date, locked FOR UPDATE
		bookings, err := uc.bookings.GetByCourtAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Every hour of the window must be free of bookings
		if hour, taken := firstBookedHour(startHour, req.DurationHours, bookings); taken {
			uc.logger.Warn("CreateBooking: hour %d already booked on court id=%d", hour, req.CourtID)
			return ErrSlotNotAvailable
		}

		// 7.3. And free of owner blocks
		blocks, err := uc.blocks.GetByCourtAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		if hour, blocked := firstBlockedHour(startHour, req.DurationHours, blocks); blocked {
			uc.logger.Warn("CreateBooking: hour %d blocked on court id=%d", hour, req.CourtID)
			return ErrSlotBlocked
		}

		// 7.4. Price is captured now and never recalculated
		totalPrice := float64(req.DurationHours) * court.PricePerHour

		booking := &domain.Booking{
			UserID:         req.UserID,
			VenueID:        venue.ID,
			CourtID:        court.ID,
			BookingDate:    req.Date,
			StartHour:      startHour,
			DurationHours:  req.DurationHours,
			Status:         domain.StatusConfirmed,
			VenueName:      venue.Name,
			CourtName:      court.Name,
			Sport:          court.Sport,
			TotalPrice:     totalPrice,
			IdempotencyKey: idempotencyKey,
		}

		created, err := uc.bookings.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateKey) {
				// A concurrent retry with the same key won the race
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateKey) {
			existing, lookupErr := uc.bookings.GetByIdempotencyKey(ctx, idempotencyKey)
			if lookupErr == nil {
				uc.logger.Info("CreateBooking: replaying booking id=%d after duplicate key", existing.ID)
				return uc.buildResponse(existing)
			}
			return nil, fmt.Errorf("%w: duplicate key replay failed: %v", ErrInternal, lookupErr)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total_price=%.2f", result.ID, result.TotalPrice)

	resp, err := uc.buildResponse(result)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (uc *UseCase) buildResponse(b *domain.Booking) (*Response, error) {
	startTime := types.NewTimeStringFromHour(b.StartHour)
	endTime := types.NewTimeStringFromHour(b.EndHour())

	paymentURL, err := uc.paymentPage.BuildURL(paymentpage.PaymentParams{
		BookingID:    b.ID,
		VenueName:    b.VenueName,
		CourtName:    b.CourtName,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    startTime,
		EndTime:      endTime,
		TotalHours:   b.DurationHours,
		PricePerHour: b.TotalPrice / float64(b.DurationHours),
		TotalPrice:   b.TotalPrice,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build payment url for booking id=%d: %v", b.ID, err)
		return nil, fmt.Errorf("%w: failed to build payment url: %v", ErrInternal, err)
	}

	return &Response{
		ID:            b.ID,
		UserID:        b.UserID,
		VenueID:       b.VenueID,
		CourtID:       b.CourtID,
		BookingDate:   b.BookingDate,
		StartTime:     startTime,
		EndTime:       endTime,
		DurationHours: b.DurationHours,
		Status:        string(b.Status),
		VenueName:     b.VenueName,
		CourtName:     b.CourtName,
		Sport:         b.Sport,
		TotalPrice:    b.TotalPrice,
		PaymentURL:    paymentURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}, nil
}
