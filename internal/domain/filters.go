package domain

// FilterAll is the sentinel value for categorical filters that match everything.
const FilterAll = "all"

// Default price bounds restored by a filter reset.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 10000
)

// SearchFilters is the complete filter state of the marketplace search.
// Price-range sanity (PriceMin <= PriceMax) is the caller's responsibility;
// the engine applies whatever it is handed.
type SearchFilters struct {
	Query        string `json:"query"`
	PropertyType string `json:"property_type"` // ListingType value or FilterAll
	PriceMin     int    `json:"price_min"`
	PriceMax     int    `json:"price_max"`
	Beds         string `json:"beds"` // descriptor fragment or FilterAll
	Baths        string `json:"baths"`
	City         string `json:"city"`
}

// DefaultFilters returns the filter state a reset restores.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Query:        "",
		PropertyType: FilterAll,
		PriceMin:     DefaultPriceMin,
		PriceMax:     DefaultPriceMax,
		Beds:         FilterAll,
		Baths:        FilterAll,
		City:         FilterAll,
	}
}

// FilterUpdate is a partial filter change. Nil fields leave the current
// value unchanged.
type FilterUpdate struct {
	Query        *string
	PropertyType *string
	PriceMin     *int
	PriceMax     *int
	Beds         *string
	Baths        *string
	City         *string
}

type SortField string

const (
	SortFieldPrice     SortField = "price" // compares the low end of the price range
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldName      SortField = "name"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

type SortOption struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders listings newest-first.
func DefaultSort() SortOption {
	return SortOption{Field: SortFieldCreatedAt, Direction: SortDescending}
}
