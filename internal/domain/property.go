package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property is an owner-managed asset. The unit counters are aggregates
// derived from the Unit collection; after every unit mutation the portfolio
// store keeps OccupiedUnits + AvailableUnits == TotalUnits and
// OccupiedUnits == count of the property's units with status occupied.
// NetIncome is maintained alongside the financial figures, not the counters.
type Property struct {
	ID             uuid.UUID   `json:"id"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Province       string      `json:"province"`
	Type           ListingType `json:"type"`
	TotalUnits     int         `json:"total_units"`
	OccupiedUnits  int         `json:"occupied_units"`
	AvailableUnits int         `json:"available_units"`
	MonthlyRevenue float64     `json:"monthly_revenue"`
	Expenses       float64     `json:"expenses"`
	NetIncome      float64     `json:"net_income"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
