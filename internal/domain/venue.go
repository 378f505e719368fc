package domain

import "time"

// VenueStatus represents the approval lifecycle of a facility.
// New venues start as pending and become visible to players only after an
// admin approves them.
type VenueStatus string

const (
	VenueStatusPending  VenueStatus = "pending"
	VenueStatusApproved VenueStatus = "approved"
	VenueStatusRejected VenueStatus = "rejected"
	VenueStatusInactive VenueStatus = "inactive"
)

// Venue represents a physical sports facility containing one or more courts
type Venue struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Address     string
	Sports      []string
	Amenities   []string
	Photos      []string

	Rating      float64
	RatingCount int

	Status        VenueStatus
	AdminComments *string
	SubmittedAt   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved returns true if the venue is visible to players
func (v *Venue) IsApproved() bool {
	return v.Status == VenueStatusApproved
}

// IsPending returns true if the venue awaits admin review
func (v *Venue) IsPending() bool {
	return v.Status == VenueStatusPending
}

// VenueSort is the closed set of supported listing sort orders
type VenueSort string

const (
	VenueSortRating    VenueSort = "rating"
	VenueSortPriceAsc  VenueSort = "price_asc"
	VenueSortPriceDesc VenueSort = "price_desc"
	VenueSortName      VenueSort = "name"
)

// VenuesFilter narrows the public venue listing
type VenuesFilter struct {
	Search   *string // matches name or address
	Sport    *string
	PriceMin *float64 // applied to the venue's cheapest court
	PriceMax *float64
	Status   *VenueStatus // nil defaults to approved-only in the service
	OwnerID  *int64
	Sort     VenueSort
	Page     int
	Limit    int
}

// VenueListing is a venue row enriched with the cheapest court price,
// used by the public listing and the home page.
type VenueListing struct {
	Venue
	StartingPrice float64
	CourtCount    int
}

// SportPopularity is an aggregate for the home page
type SportPopularity struct {
	Sport      string
	VenueCount int
}
