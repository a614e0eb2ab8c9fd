package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentRecord is the authoritative record of a lead assignment. At most
// one record may be active per (contact, channel), enforced by a partial
// unique index rather than an application-level read-then-write check. The
// employee-name tag on the contact is a projection of this row, never the
// source of truth.
type AssignmentRecord struct {
	BaseModel
	TenantID         uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID       uuid.UUID        `json:"employee_id" gorm:"type:uuid;not null;index:idx_assignments_employee_period" validate:"required"`
	ContactID        uuid.UUID        `json:"contact_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_contact_channel_active,where:status = 'active'" validate:"required"`
	Channel          string           `json:"channel" gorm:"size:100;not null;uniqueIndex:idx_assignments_contact_channel_active,where:status = 'active'" validate:"required,max=100"`
	Period           string           `json:"period" gorm:"size:7;not null;index:idx_assignments_employee_period" validate:"required"` // YYYY-MM in the tenant's timezone
	RoleAtAssignment EmployeeRole     `json:"role_at_assignment" gorm:"type:varchar(50);not null"`
	WeightUsed       float64          `json:"weight_used" gorm:"not null;default:1"`
	Status           AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes            string           `json:"notes" gorm:"type:text"` // opaque trigger context, audit only
	DeactivatedAt    *time.Time       `json:"deactivated_at,omitempty"`

	// Relationships
	Tenant   Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Contact  Contact  `json:"contact,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentRecord
func (AssignmentRecord) TableName() string {
	return "assignment_records"
}

// PeriodOf returns the allocation period key (YYYY-MM) for a point in time.
// The caller is expected to pass a time already localized to the tenant's
// timezone so month boundaries fall where the tenant expects them.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}
