// Package search implements the marketplace listing search engine: a fixed
// listing collection plus the current filter, sort, and pagination state,
// deriving the visible result set on demand.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yah600/okey-core/internal/domain"
)

// DefaultItemsPerPage matches the marketplace's 3x3 result grid.
const DefaultItemsPerPage = 9

// Engine holds the listing collection and the current search state. Results
// are recomputed on every read; nothing is cached.
//
// An Engine is a single mutual-exclusion domain: operations are synchronous
// and it is not safe for concurrent use. Construct one per consumer.
type Engine struct {
	listings     []domain.Listing
	filters      domain.SearchFilters
	sortBy       domain.SortOption
	currentPage  int
	itemsPerPage int
}

// New builds an engine over a copy of the given listings with default filter
// and sort state. An itemsPerPage below 1 falls back to DefaultItemsPerPage.
func New(listings []domain.Listing, itemsPerPage int) *Engine {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	ls := make([]domain.Listing, len(listings))
	copy(ls, listings)
	return &Engine{
		listings:     ls,
		filters:      domain.DefaultFilters(),
		sortBy:       domain.DefaultSort(),
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// Hydrate replaces the filter and sort state wholesale, e.g. from a persisted
// preference snapshot, and resets pagination.
func (e *Engine) Hydrate(f domain.SearchFilters, s domain.SortOption) {
	e.filters = f
	e.sortBy = s
	e.currentPage = 1
}

// AddListing assigns the listing a fresh identity and creation time and
// prepends it to the collection.
func (e *Engine) AddListing(l domain.Listing) domain.Listing {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()

	listings := make([]domain.Listing, 0, len(e.listings)+1)
	listings = append(listings, l)
	listings = append(listings, e.listings...)
	e.listings = listings

	return l
}

// SetFilters merges the non-nil fields into the current filters and resets
// pagination. No validation is applied; callers guarantee PriceMin <= PriceMax.
func (e *Engine) SetFilters(u domain.FilterUpdate) {
	f := e.filters
	if u.Query != nil {
		f.Query = *u.Query
	}
	if u.PropertyType != nil {
		f.PropertyType = *u.PropertyType
	}
	if u.PriceMin != nil {
		f.PriceMin = *u.PriceMin
	}
	if u.PriceMax != nil {
		f.PriceMax = *u.PriceMax
	}
	if u.Beds != nil {
		f.Beds = *u.Beds
	}
	if u.Baths != nil {
		f.Baths = *u.Baths
	}
	if u.City != nil {
		f.City = *u.City
	}
	e.filters = f
	e.currentPage = 1
}

// ResetFilters restores the default filter state and resets pagination.
func (e *Engine) ResetFilters() {
	e.filters = domain.DefaultFilters()
	e.currentPage = 1
}

// SetSortBy replaces the sort option and resets pagination.
func (e *Engine) SetSortBy(s domain.SortOption) {
	e.sortBy = s
	e.currentPage = 1
}

// SetCurrentPage sets the 1-indexed page without clamping. Out-of-range pages
// yield empty results rather than errors.
func (e *Engine) SetCurrentPage(n int) {
	e.currentPage = n
}

func (e *Engine) Filters() domain.SearchFilters { return e.filters }
func (e *Engine) SortBy() domain.SortOption     { return e.sortBy }
func (e *Engine) CurrentPage() int              { return e.currentPage }
func (e *Engine) ItemsPerPage() int             { return e.itemsPerPage }

// FilteredListings derives the full result set from the current filters and
// sort: all five predicates must pass (logical AND), then the set is ordered
// by the sort option. Recomputed on every call.
func (e *Engine) FilteredListings() []domain.Listing {
	out := make([]domain.Listing, 0, len(e.listings))
	for _, l := range e.listings {
		if e.matches(&l) {
			out = append(out, l)
		}
	}
	e.sortListings(out)
	return out
}

// PaginatedListings returns the current page of FilteredListings.
func (e *Engine) PaginatedListings() []domain.Listing {
	filtered := e.FilteredListings()
	start := (e.currentPage - 1) * e.itemsPerPage
	if start < 0 || start >= len(filtered) {
		return []domain.Listing{}
	}
	end := start + e.itemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages reports how many pages the filtered set spans; 0 when empty.
func (e *Engine) TotalPages() int {
	n := len(e.FilteredListings())
	return (n + e.itemsPerPage - 1) / e.itemsPerPage
}

func (e *Engine) matches(l *domain.Listing) bool {
	f := e.filters

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.Address), q) &&
			!strings.Contains(strings.ToLower(l.City), q) {
			return false
		}
	}

	if f.PropertyType != domain.FilterAll && !strings.EqualFold(string(l.Type), f.PropertyType) {
		return false
	}

	// Price is matched against the low end of the listing's range only; a
	// listing priced 500-9000 does not pass PriceMin=8000. Inherited from
	// the source and kept as-is.
	if l.PriceFrom < f.PriceMin || l.PriceFrom > f.PriceMax {
		return false
	}

	if f.City != domain.FilterAll && !strings.EqualFold(l.City, f.City) {
		return false
	}

	// Beds/baths filters are substring matches so that a "2" filter passes
	// range descriptors like "1-2".
	if f.Beds != domain.FilterAll && !strings.Contains(l.Beds, f.Beds) {
		return false
	}
	if f.Baths != domain.FilterAll && !strings.Contains(l.Baths, f.Baths) {
		return false
	}

	return true
}

// sortListings orders the slice in place. The sort is intentionally
// non-stable: the source comparator never reports ties, so the relative
// order of equal elements is unspecified.
func (e *Engine) sortListings(ls []domain.Listing) {
	var less func(a, b *domain.Listing) bool
	switch e.sortBy.Field {
	case domain.SortFieldPrice:
		less = func(a, b *domain.Listing) bool { return a.PriceFrom < b.PriceFrom }
	case domain.SortFieldName:
		less = func(a, b *domain.Listing) bool { return a.Name < b.Name }
	default: // createdAt
		less = func(a, b *domain.Listing) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	asc := e.sortBy.Direction == domain.SortAscending
	sort.Slice(ls, func(i, j int) bool {
		if asc {
			return less(&ls[i], &ls[j])
		}
		return less(&ls[j], &ls[i])
	})
}
