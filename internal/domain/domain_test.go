package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yah600/okey-core/internal/domain"
)

// ---------------------------------------------------------------------------
// 1. Enum constants — string value regression guards.
// ---------------------------------------------------------------------------

func TestListingTypeConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  domain.ListingType
		want string
	}{
		{"apartment", domain.ListingTypeApartment, "Apartment"},
		{"condo", domain.ListingTypeCondo, "Condo"},
		{"house", domain.ListingTypeHouse, "House"},
		{"loft", domain.ListingTypeLoft, "Loft"},
		{"townhouse", domain.ListingTypeTownhouse, "Townhouse"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, string(tt.got))
		})
	}
}

func TestUnitStatusConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  domain.UnitStatus
		want string
	}{
		{"occupied", domain.UnitStatusOccupied, "occupied"},
		{"available", domain.UnitStatusAvailable, "available"},
		{"maintenance", domain.UnitStatusMaintenance, "maintenance"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, string(tt.got))
		})
	}
}

func TestSortConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "price", string(domain.SortFieldPrice))
	assert.Equal(t, "createdAt", string(domain.SortFieldCreatedAt))
	assert.Equal(t, "name", string(domain.SortFieldName))
	assert.Equal(t, "asc", string(domain.SortAscending))
	assert.Equal(t, "desc", string(domain.SortDescending))
	assert.Equal(t, "all", domain.FilterAll)
}

// ---------------------------------------------------------------------------
// 2. Defaults.
// ---------------------------------------------------------------------------

func TestDefaultFilters(t *testing.T) {
	t.Parallel()

	f := domain.DefaultFilters()
	assert.Equal(t, domain.SearchFilters{
		Query:        "",
		PropertyType: domain.FilterAll,
		PriceMin:     0,
		PriceMax:     10000,
		Beds:         domain.FilterAll,
		Baths:        domain.FilterAll,
		City:         domain.FilterAll,
	}, f)
}

func TestDefaultSort(t *testing.T) {
	t.Parallel()

	s := domain.DefaultSort()
	assert.Equal(t, domain.SortFieldCreatedAt, s.Field)
	assert.Equal(t, domain.SortDescending, s.Direction)
}

// ---------------------------------------------------------------------------
// 3. Unit helpers.
// ---------------------------------------------------------------------------

func TestUnit_Occupied(t *testing.T) {
	t.Parallel()

	assert.True(t, (&domain.Unit{Status: domain.UnitStatusOccupied}).Occupied())
	assert.False(t, (&domain.Unit{Status: domain.UnitStatusAvailable}).Occupied())
	assert.False(t, (&domain.Unit{Status: domain.UnitStatusMaintenance}).Occupied())
}

func TestUnit_ClearTenancy(t *testing.T) {
	t.Parallel()

	tid := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	u := domain.Unit{
		Status:     domain.UnitStatusOccupied,
		TenantID:   &tid,
		TenantName: "Marie Tremblay",
		LeaseStart: &start,
		LeaseEnd:   &end,
	}

	u.ClearTenancy()

	assert.Nil(t, u.TenantID)
	assert.Empty(t, u.TenantName)
	assert.Nil(t, u.LeaseStart)
	assert.Nil(t, u.LeaseEnd)
}

// ---------------------------------------------------------------------------
// 4. Sentinel errors.
// ---------------------------------------------------------------------------

func TestErrNotFound_WrappingPreservesIdentity(t *testing.T) {
	t.Parallel()

	require.Error(t, domain.ErrNotFound)

	wrapped := fmt.Errorf("outer: %w", domain.ErrNotFound)
	require.ErrorIs(t, wrapped, domain.ErrNotFound)

	doubleWrapped := fmt.Errorf("outer2: %w", wrapped)
	require.ErrorIs(t, doubleWrapped, domain.ErrNotFound)
}
