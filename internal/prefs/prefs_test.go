package prefs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yah600/okey-core/internal/domain"
	"github.com/yah600/okey-core/internal/prefs"
)

func samplePrefs() *prefs.Preferences {
	return &prefs.Preferences{
		Filters: domain.SearchFilters{
			Query:        "loft",
			PropertyType: "Loft",
			PriceMin:     1500,
			PriceMax:     4000,
			Beds:         "1-2",
			Baths:        domain.FilterAll,
			City:         "Montreal",
		},
		SortBy: domain.SortOption{Field: domain.SortFieldPrice, Direction: domain.SortAscending},
	}
}

// ---------------------------------------------------------------------------
// 1. Defaults.
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	t.Parallel()

	p := prefs.Default()
	assert.Equal(t, domain.DefaultFilters(), p.Filters)
	assert.Equal(t, domain.DefaultSort(), p.SortBy)
}

// ---------------------------------------------------------------------------
// 2. Memory store.
// ---------------------------------------------------------------------------

func TestMemory_LoadBeforeSave(t *testing.T) {
	t.Parallel()

	m := prefs.NewMemory()
	_, err := m.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := prefs.NewMemory()

	want := samplePrefs()
	require.NoError(t, m.Save(ctx, want))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemory_SaveCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := prefs.NewMemory()

	p := samplePrefs()
	require.NoError(t, m.Save(ctx, p))
	p.Filters.Query = "mutated after save"

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "loft", got.Filters.Query)

	// Mutating a loaded snapshot does not leak back either.
	got.Filters.City = "Laval"
	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Montreal", again.Filters.City)
}

// ---------------------------------------------------------------------------
// 3. SQLite store.
// ---------------------------------------------------------------------------

func TestSQLite_LoadBeforeSave(t *testing.T) {
	t.Parallel()

	s, err := prefs.NewSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLite_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := prefs.NewSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()

	want := samplePrefs()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_SaveOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := prefs.NewSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, samplePrefs()))

	second := prefs.Default()
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

// TestSQLite_SurvivesReopen verifies the snapshot outlives the process that
// wrote it.
func TestSQLite_SurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := prefs.NewSQLite(path)
	require.NoError(t, err)
	want := samplePrefs()
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	reopened, err := prefs.NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
