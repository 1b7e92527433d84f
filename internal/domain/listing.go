package domain

import (
	"time"

	"github.com/google/uuid"
)

type ListingType string

const (
	ListingTypeApartment ListingType = "Apartment"
	ListingTypeCondo     ListingType = "Condo"
	ListingTypeHouse     ListingType = "House"
	ListingTypeLoft      ListingType = "Loft"
	ListingTypeTownhouse ListingType = "Townhouse"
)

// Listing is a marketplace-facing property summary, distinct from an owner's
// managed Property record (separate collections, never reconciled). Listings
// are seeded at startup and treated as immutable by the search engine.
type Listing struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Province       string      `json:"province"`
	PriceFrom      int         `json:"price_from"`
	PriceTo        int         `json:"price_to"`
	Units          int         `json:"units"`
	AvailableUnits int         `json:"available_units"`
	Type           ListingType `json:"type"`
	Beds           string      `json:"beds"` // free-form range descriptor, e.g. "1-2"
	Baths          string      `json:"baths"`
	Amenities      []string    `json:"amenities,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
