package models

import "encoding/json"

// Tenant represents an isolated customer company. All employees, contacts,
// assignments and appointments are scoped to exactly one tenant.
type Tenant struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;uniqueIndex;not null" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"size:200"`
	Timezone    string          `json:"timezone" gorm:"size:64;not null;default:'UTC'"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Contacts  []Contact  `json:"contacts,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
