package models

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// Request models

// VenueRequest creates or updates a venue
type VenueRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Sports      []string `json:"sports"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos"`
}

// ListVenuesRequest is the public listing query
type ListVenuesRequest struct {
	Search   *string  `json:"search,omitempty"`
	Sport    *string  `json:"sport,omitempty"`
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
	Sort     string   `json:"sort,omitempty"`
	Page     int      `json:"page,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// CourtRequest creates or updates a court
type CourtRequest struct {
	Name         string           `json:"name"`
	Sport        string           `json:"sport"`
	PricePerHour float64          `json:"pricePerHour"`
	OpenTime     types.TimeString `json:"openTime"`  // "06:00"
	CloseTime    types.TimeString `json:"closeTime"` // "22:00"
	Status       *string          `json:"status,omitempty"`
}

// ModerateVenueRequest approves or rejects a pending venue
type ModerateVenueRequest struct {
	Comments *string `json:"comments,omitempty"`
}

// Response models

// VenueResponse is one venue on the wire
type VenueResponse struct {
	ID          int64    `json:"id"`
	OwnerID     int64    `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Sports      []string `json:"sports"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
	Status      string   `json:"status"`

	AdminComments *string   `json:"adminComments,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VenueDetailResponse is the venue page: venue plus its courts
type VenueDetailResponse struct {
	VenueResponse
	Courts []*CourtResponse `json:"courts"`
}

// VenueListingResponse is one card of the listing page
type VenueListingResponse struct {
	VenueResponse
	StartingPrice float64 `json:"startingPrice"`
	CourtCount    int     `json:"courtCount"`
}

// VenueListResponse is a page of venue cards
type VenueListResponse struct {
	Venues []*VenueListingResponse `json:"venues"`
	Page   int                     `json:"page"`
	Limit  int                     `json:"limit"`
	Total  int                     `json:"total"`
}

// CourtResponse is one court on the wire
type CourtResponse struct {
	ID           int64   `json:"id"`
	VenueID      int64   `json:"venueId"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
	OpenTime     string  `json:"openTime"`
	CloseTime    string  `json:"closeTime"`
	Status       string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SportResponse is one home page sport tile
type SportResponse struct {
	Sport      string `json:"sport"`
	VenueCount int    `json:"venueCount"`
}

// HomeResponse feeds the landing page
type HomeResponse struct {
	PopularVenues []*VenueListingResponse `json:"popularVenues"`
	PopularSports []*SportResponse        `json:"popularSports"`
}

// Converters

// FromDomainVenue converts a domain venue to the wire model
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	return &VenueResponse{
		ID:            v.ID,
		OwnerID:       v.OwnerID,
		Name:          v.Name,
		Description:   v.Description,
		Address:       v.Address,
		Sports:        v.Sports,
		Amenities:     v.Amenities,
		Photos:        v.Photos,
		Rating:        v.Rating,
		RatingCount:   v.RatingCount,
		Status:        string(v.Status),
		AdminComments: v.AdminComments,
		SubmittedAt:   v.SubmittedAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// FromDomainListing converts a listing row to the wire model
func FromDomainListing(l *domain.VenueListing) *VenueListingResponse {
	return &VenueListingResponse{
		VenueResponse: *FromDomainVenue(&l.Venue),
		StartingPrice: l.StartingPrice,
		CourtCount:    l.CourtCount,
	}
}

// FromDomainListings converts a page of listing rows
func FromDomainListings(listings []*domain.VenueListing) []*VenueListingResponse {
	out := make([]*VenueListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, FromDomainListing(l))
	}
	return out
}

// FromDomainCourt converts a domain court to the wire model
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:           c.ID,
		VenueID:      c.VenueID,
		Name:         c.Name,
		Sport:        c.Sport,
		PricePerHour: c.PricePerHour,
		OpenTime:     types.NewTimeStringFromHour(c.OpenHour).String(),
		CloseTime:    types.NewTimeStringFromHour(c.CloseHour).String(),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCourts converts a court list
func FromDomainCourts(courts []*domain.Court) []*CourtResponse {
	out := make([]*CourtResponse, 0, len(courts))
	for _, c := range courts {
		out = append(out, FromDomainCourt(c))
	}
	return out
}

// FromDomainSports converts the home page sport aggregates
func FromDomainSports(sports []domain.SportPopularity) []*SportResponse {
	out := make([]*SportResponse, 0, len(sports))
	for _, s := range sports {
		out = append(out, &SportResponse{Sport: s.Sport, VenueCount: s.VenueCount})
	}
	return out
}
