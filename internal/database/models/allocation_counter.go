package models

import (
	"github.com/google/uuid"
)

// MonthlyAllocationCounter counts active assignments per employee, channel and
// period. It is derived data: the invariant is that Count always equals the
// number of active AssignmentRecords for the same (employee, channel, period).
// Writes happen only inside the transaction that creates or deactivates the
// corresponding record; a periodic reconciler re-derives rows to catch drift.
type MonthlyAllocationCounter struct {
	BaseModel
	TenantID   uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_counters_employee_channel_period" validate:"required"`
	Channel    string    `json:"channel" gorm:"size:100;not null;uniqueIndex:idx_counters_employee_channel_period" validate:"required,max=100"`
	Period     string    `json:"period" gorm:"size:7;not null;uniqueIndex:idx_counters_employee_channel_period" validate:"required"`
	Count      int       `json:"count" gorm:"not null;default:0"`

	// Relationships
	Tenant   Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MonthlyAllocationCounter
func (MonthlyAllocationCounter) TableName() string {
	return "monthly_allocation_counters"
}
