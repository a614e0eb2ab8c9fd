package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Employee represents a staff member of a tenant. The allocators treat the
// directory as read-only; rows are maintained by tenant administration.
type Employee struct {
	BaseModel
	TenantID    uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_employees_tenant_name" validate:"required"`
	Name        string          `json:"name" gorm:"size:100;not null;uniqueIndex:idx_employees_tenant_name" validate:"required,max=100"` // doubles as the contact marker tag, unique per tenant
	FullName    string          `json:"full_name" gorm:"size:200"`
	Email       string          `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	PhoneNumber string          `json:"phone_number" gorm:"size:20;not null" validate:"required,max=20"` // notification address
	Role        EmployeeRole    `json:"role" gorm:"type:varchar(50);not null;default:'sales'" validate:"required"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Tenant          Tenant                   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	ChannelSettings []EmployeeChannelSetting `json:"channel_settings,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// EmployeeChannelSetting holds per-channel assignment configuration for an
// employee: whether the employee receives leads from the channel, with what
// weight, and under what monthly quota (nil means unlimited).
type EmployeeChannelSetting struct {
	BaseModel
	EmployeeID   uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_channel_settings_employee_channel" validate:"required"`
	Channel      string    `json:"channel" gorm:"size:100;not null;uniqueIndex:idx_channel_settings_employee_channel" validate:"required,max=100"`
	Enabled      bool      `json:"enabled" gorm:"default:false"`
	Weight       float64   `json:"weight" gorm:"not null;default:1" validate:"gte=0"`
	MonthlyQuota *int      `json:"monthly_quota,omitempty" gorm:"" validate:"omitempty,min=0"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EmployeeChannelSetting
func (EmployeeChannelSetting) TableName() string {
	return "employee_channel_settings"
}
