// Package seed provides the fixed sample data the platform boots from. The
// collections are embedded at build time and re-loaded on every startup;
// nothing in them is persisted between runs.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/yah600/okey-core/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Listings returns the sample marketplace listings.
func Listings() ([]domain.Listing, error) {
	return load[domain.Listing]("data/listings.json")
}

// Properties returns the sample owner properties.
func Properties() ([]domain.Property, error) {
	return load[domain.Property]("data/properties.json")
}

// Units returns the sample units. Their statuses are consistent with the
// aggregate counters on the sample properties.
func Units() ([]domain.Unit, error) {
	return load[domain.Unit]("data/units.json")
}

func load[T any](name string) ([]T, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", name, err)
	}
	return out, nil
}
