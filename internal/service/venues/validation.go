package venues

import (
	"fmt"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/internal/service/venues/models"
)

func validateVenueRequest(req *models.VenueRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Sports) == 0 {
		return fmt.Errorf("%w: at least one sport is required", ErrInvalidInput)
	}
	return nil
}

// validateCourtRequest checks the court fields and resolves the operating
// window into whole hours.
func validateCourtRequest(req *models.CourtRequest) (openHour, closeHour int, err error) {
	if req.Name == "" {
		return 0, 0, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Sport == "" {
		return 0, 0, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if req.PricePerHour <= 0 {
		return 0, 0, fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}

	openHour, err = req.OpenTime.Hour()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: openTime must be a whole hour: %v", ErrInvalidInput, err)
	}

	// "24:00" is accepted as the end-of-day close marker
	closeHour, err = req.CloseTime.Hour()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: closeTime must be a whole hour: %v", ErrInvalidInput, err)
	}

	if openHour < domain.MinOperatingHour || closeHour > domain.MaxOperatingHour || openHour >= closeHour {
		return 0, 0, fmt.Errorf("%w: operating window [%d, %d) is invalid", ErrInvalidInput, openHour, closeHour)
	}

	return openHour, closeHour, nil
}

func toVenueStatus(s string) (domain.VenueStatus, error) {
	switch domain.VenueStatus(s) {
	case domain.VenueStatusPending, domain.VenueStatusApproved, domain.VenueStatusRejected, domain.VenueStatusInactive:
		return domain.VenueStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown venue status %q", ErrInvalidInput, s)
	}
}

func toCourtStatus(s string) (domain.CourtStatus, error) {
	switch domain.CourtStatus(s) {
	case domain.CourtStatusActive, domain.CourtStatusMaintenance, domain.CourtStatusInactive:
		return domain.CourtStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown court status %q", ErrInvalidInput, s)
	}
}
