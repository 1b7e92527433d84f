// Package portfolio implements the owner-side property store: the property
// and unit collections plus the aggregate-counter maintenance that keeps the
// per-property unit counts consistent across unit mutations.
package portfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yah600/okey-core/internal/domain"
)

// Store owns the property and unit collections. Collections are
// copy-on-write: every mutation replaces the affected slice wholesale, so a
// slice handed out by a query is never mutated afterwards.
//
// A Store is a single mutual-exclusion domain: operations are synchronous
// and it is not safe for concurrent use.
type Store struct {
	log        zerolog.Logger
	properties []domain.Property
	units      []domain.Unit
}

// New builds a store over copies of the seeded collections.
func New(properties []domain.Property, units []domain.Unit, log zerolog.Logger) *Store {
	ps := make([]domain.Property, len(properties))
	copy(ps, properties)
	us := make([]domain.Unit, len(units))
	copy(us, units)
	return &Store{log: log, properties: ps, units: us}
}

// AddProperty assigns the property a fresh identity and timestamps,
// normalizes its derived fields, and prepends it to the collection.
func (s *Store) AddProperty(p domain.Property) domain.Property {
	p.ID = uuid.New()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.AvailableUnits = p.TotalUnits - p.OccupiedUnits
	p.NetIncome = p.MonthlyRevenue - p.Expenses

	properties := make([]domain.Property, 0, len(s.properties)+1)
	properties = append(properties, p)
	properties = append(properties, s.properties...)
	s.properties = properties

	s.log.Debug().Stringer("property_id", p.ID).Stringer("owner_id", p.OwnerID).Msg("property added")
	return p
}

// UpdatePropertyFinancials sets the property's revenue and expense figures
// and rederives net income.
func (s *Store) UpdatePropertyFinancials(id uuid.UUID, revenue, expenses float64) (domain.Property, error) {
	i := s.propertyIndex(id)
	if i < 0 {
		return domain.Property{}, fmt.Errorf("portfolio.UpdatePropertyFinancials: %w", domain.ErrNotFound)
	}

	p := s.properties[i]
	p.MonthlyRevenue = revenue
	p.Expenses = expenses
	p.NetIncome = revenue - expenses
	p.UpdatedAt = time.Now()
	s.replaceProperty(i, p)

	return p, nil
}

// AddUnit assigns the unit a fresh identity, prepends it to the unit
// collection, and refreshes the owning property's counters: total grows by
// one, occupied is recounted, available is the remainder. A unit whose
// PropertyID matches no property is still added; only the counter update is
// skipped.
func (s *Store) AddUnit(u domain.Unit) domain.Unit {
	u.ID = uuid.New()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if !u.Occupied() {
		u.ClearTenancy()
	}

	units := make([]domain.Unit, 0, len(s.units)+1)
	units = append(units, u)
	units = append(units, s.units...)
	s.units = units

	if i := s.propertyIndex(u.PropertyID); i >= 0 {
		p := s.properties[i]
		p.TotalUnits++
		p.OccupiedUnits = s.occupiedCount(p.ID)
		p.AvailableUnits = p.TotalUnits - p.OccupiedUnits
		p.UpdatedAt = now
		s.replaceProperty(i, p)
	} else {
		s.log.Debug().Stringer("property_id", u.PropertyID).Msg("unit added for unknown property, counters untouched")
	}

	s.log.Debug().Stringer("unit_id", u.ID).Str("status", string(u.Status)).Msg("unit added")
	return u
}

// UpdateUnit merges the non-nil fields into the matching unit. The owning
// property's occupied/available counters are recomputed only when the status
// actually changes; total stays as-is. Returns domain.ErrNotFound, with both
// collections untouched, when no unit matches.
func (s *Store) UpdateUnit(id uuid.UUID, upd domain.UnitUpdate) (domain.Unit, error) {
	i := s.unitIndex(id)
	if i < 0 {
		return domain.Unit{}, fmt.Errorf("portfolio.UpdateUnit: %w", domain.ErrNotFound)
	}

	u := s.units[i]
	prev := u.Status
	if upd.UnitNumber != nil {
		u.UnitNumber = *upd.UnitNumber
	}
	if upd.Beds != nil {
		u.Beds = *upd.Beds
	}
	if upd.Baths != nil {
		u.Baths = *upd.Baths
	}
	if upd.SizeSqFt != nil {
		u.SizeSqFt = *upd.SizeSqFt
	}
	if upd.Rent != nil {
		u.Rent = *upd.Rent
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.TenantID != nil {
		tid := *upd.TenantID
		u.TenantID = &tid
	}
	if upd.TenantName != nil {
		u.TenantName = *upd.TenantName
	}
	if upd.LeaseStart != nil {
		t := *upd.LeaseStart
		u.LeaseStart = &t
	}
	if upd.LeaseEnd != nil {
		t := *upd.LeaseEnd
		u.LeaseEnd = &t
	}
	if !u.Occupied() {
		u.ClearTenancy()
	}
	u.UpdatedAt = time.Now()

	units := make([]domain.Unit, len(s.units))
	copy(units, s.units)
	units[i] = u
	s.units = units

	if upd.Status != nil && *upd.Status != prev {
		if pi := s.propertyIndex(u.PropertyID); pi >= 0 {
			p := s.properties[pi]
			p.OccupiedUnits = s.occupiedCount(p.ID)
			p.AvailableUnits = p.TotalUnits - p.OccupiedUnits
			p.UpdatedAt = u.UpdatedAt
			s.replaceProperty(pi, p)
		}
		s.log.Debug().Stringer("unit_id", id).Str("from", string(prev)).Str("to", string(u.Status)).Msg("unit status changed")
	}

	return u, nil
}

// DeleteUnit removes the unit and refreshes the owning property's counters:
// total shrinks by one, occupied is recounted, available is the remainder.
// Returns domain.ErrNotFound, with both collections untouched, when no unit
// matches.
func (s *Store) DeleteUnit(id uuid.UUID) error {
	i := s.unitIndex(id)
	if i < 0 {
		return fmt.Errorf("portfolio.DeleteUnit: %w", domain.ErrNotFound)
	}

	u := s.units[i]
	units := make([]domain.Unit, 0, len(s.units)-1)
	units = append(units, s.units[:i]...)
	units = append(units, s.units[i+1:]...)
	s.units = units

	if pi := s.propertyIndex(u.PropertyID); pi >= 0 {
		p := s.properties[pi]
		p.TotalUnits--
		p.OccupiedUnits = s.occupiedCount(p.ID)
		p.AvailableUnits = p.TotalUnits - p.OccupiedUnits
		p.UpdatedAt = time.Now()
		s.replaceProperty(pi, p)
	}

	s.log.Debug().Stringer("unit_id", id).Msg("unit deleted")
	return nil
}

// PropertiesByOwner returns the owner's properties, newest first.
func (s *Store) PropertiesByOwner(ownerID uuid.UUID) []domain.Property {
	out := make([]domain.Property, 0)
	for _, p := range s.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// PropertyByID returns the matching property or domain.ErrNotFound.
func (s *Store) PropertyByID(id uuid.UUID) (domain.Property, error) {
	if i := s.propertyIndex(id); i >= 0 {
		return s.properties[i], nil
	}
	return domain.Property{}, fmt.Errorf("portfolio.PropertyByID: %w", domain.ErrNotFound)
}

// UnitsByProperty returns the property's units in collection order.
func (s *Store) UnitsByProperty(propertyID uuid.UUID) []domain.Unit {
	out := make([]domain.Unit, 0)
	for _, u := range s.units {
		if u.PropertyID == propertyID {
			out = append(out, u)
		}
	}
	return out
}

// UnitByID returns the matching unit or domain.ErrNotFound.
func (s *Store) UnitByID(id uuid.UUID) (domain.Unit, error) {
	if i := s.unitIndex(id); i >= 0 {
		return s.units[i], nil
	}
	return domain.Unit{}, fmt.Errorf("portfolio.UnitByID: %w", domain.ErrNotFound)
}

// Properties returns a copy of the full property collection.
func (s *Store) Properties() []domain.Property {
	out := make([]domain.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// Units returns a copy of the full unit collection.
func (s *Store) Units() []domain.Unit {
	out := make([]domain.Unit, len(s.units))
	copy(out, s.units)
	return out
}

func (s *Store) propertyIndex(id uuid.UUID) int {
	for i := range s.properties {
		if s.properties[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) unitIndex(id uuid.UUID) int {
	for i := range s.units {
		if s.units[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) occupiedCount(propertyID uuid.UUID) int {
	n := 0
	for i := range s.units {
		if s.units[i].PropertyID == propertyID && s.units[i].Occupied() {
			n++
		}
	}
	return n
}

func (s *Store) replaceProperty(i int, p domain.Property) {
	properties := make([]domain.Property, len(s.properties))
	copy(properties, s.properties)
	properties[i] = p
	s.properties = properties
}
