package domain

import (
	"time"

	"github.com/google/uuid"
)

type UnitStatus string

const (
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// Unit is a rentable space belonging to exactly one Property, referenced by
// PropertyID. Tenancy fields are populated only while the unit is occupied;
// a status change away from occupied clears them.
type Unit struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	UnitNumber string     `json:"unit_number"`
	Beds       int        `json:"beds"`
	Baths      int        `json:"baths"`
	SizeSqFt   int        `json:"size_sqft"`
	Rent       float64    `json:"rent"`
	Status     UnitStatus `json:"status"`
	TenantID   *uuid.UUID `json:"tenant_id,omitempty"`
	TenantName string     `json:"tenant_name,omitempty"`
	LeaseStart *time.Time `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time `json:"lease_end,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Occupied reports whether the unit currently houses a tenant.
func (u *Unit) Occupied() bool {
	return u.Status == UnitStatusOccupied
}

// ClearTenancy drops the tenant and lease fields.
func (u *Unit) ClearTenancy() {
	u.TenantID = nil
	u.TenantName = ""
	u.LeaseStart = nil
	u.LeaseEnd = nil
}

// UnitUpdate is a partial unit change. Nil fields leave the current value
// unchanged.
type UnitUpdate struct {
	UnitNumber *string
	Beds       *int
	Baths      *int
	SizeSqFt   *int
	Rent       *float64
	Status     *UnitStatus
	TenantID   *uuid.UUID
	TenantName *string
	LeaseStart *time.Time
	LeaseEnd   *time.Time
}
