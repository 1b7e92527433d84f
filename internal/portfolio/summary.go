package portfolio

import "github.com/google/uuid"

// Summary is the owner-dashboard roll-up across all of an owner's properties.
type Summary struct {
	Properties     int
	TotalUnits     int
	OccupiedUnits  int
	AvailableUnits int
	OccupancyRate  float64 // occupied/total in [0, 1]; 0 for an empty portfolio
	MonthlyRevenue float64
	Expenses       float64
	NetIncome      float64
}

// OwnerSummary derives the owner's portfolio totals. Pure query, no side
// effects.
func (s *Store) OwnerSummary(ownerID uuid.UUID) Summary {
	var sum Summary
	for i := range s.properties {
		p := &s.properties[i]
		if p.OwnerID != ownerID {
			continue
		}
		sum.Properties++
		sum.TotalUnits += p.TotalUnits
		sum.OccupiedUnits += p.OccupiedUnits
		sum.AvailableUnits += p.AvailableUnits
		sum.MonthlyRevenue += p.MonthlyRevenue
		sum.Expenses += p.Expenses
		sum.NetIncome += p.NetIncome
	}
	if sum.TotalUnits > 0 {
		sum.OccupancyRate = float64(sum.OccupiedUnits) / float64(sum.TotalUnits)
	}
	return sum
}
