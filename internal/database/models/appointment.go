package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Appointment represents a booked time slot for a contact, optionally staffed
// by one or two employees. Rows are never deleted; cancellation is a status
// transition so the history stays auditable.
type Appointment struct {
	BaseModel
	TenantID        uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	ContactID       uuid.UUID         `json:"contact_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title           string            `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Description     string            `json:"description" gorm:"type:text"`
	ScheduledAt     time.Time         `json:"scheduled_at" gorm:"not null;index" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" gorm:"not null" validate:"required,min=1"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	PrimaryStaffID  *uuid.UUID        `json:"primary_staff_id,omitempty" gorm:"type:uuid;index"`
	SecondStaffID   *uuid.UUID        `json:"second_staff_id,omitempty" gorm:"type:uuid;index"`
	ExternalEventID string            `json:"external_event_id,omitempty" gorm:"size:200"`
	Metadata        json.RawMessage   `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Tenant       Tenant    `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Contact      Contact   `json:"contact,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	PrimaryStaff *Employee `json:"primary_staff,omitempty" gorm:"foreignKey:PrimaryStaffID;constraint:OnDelete:SET NULL"`
	SecondStaff  *Employee `json:"second_staff,omitempty" gorm:"foreignKey:SecondStaffID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

// EndsAt returns the exclusive end of the appointment interval.
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the appointment's [start, end) interval overlaps
// the given interval.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.ScheduledAt.Before(end) && a.EndsAt().After(start)
}

// StaffIDs returns the non-nil staff assigned to the appointment.
func (a *Appointment) StaffIDs() []uuid.UUID {
	var ids []uuid.UUID
	if a.PrimaryStaffID != nil {
		ids = append(ids, *a.PrimaryStaffID)
	}
	if a.SecondStaffID != nil {
		ids = append(ids, *a.SecondStaffID)
	}
	return ids
}
