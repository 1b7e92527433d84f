// Package prefs persists the user's marketplace search preferences (filters
// and sort) as one opaque snapshot blob. The listing/property/unit
// collections are never persisted; they are re-seeded at startup.
package prefs

import (
	"context"

	"github.com/yah600/okey-core/internal/domain"
)

// Preferences is the snapshot payload: the search state a user left the
// marketplace with.
type Preferences struct {
	Filters domain.SearchFilters `json:"filters"`
	SortBy  domain.SortOption    `json:"sort_by"`
}

// Default returns the preferences used when no snapshot exists yet.
func Default() *Preferences {
	return &Preferences{
		Filters: domain.DefaultFilters(),
		SortBy:  domain.DefaultSort(),
	}
}

// Store reads and writes the snapshot whole. Load returns
// domain.ErrNotFound when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (*Preferences, error)
	Save(ctx context.Context, p *Preferences) error
}
