package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CalendarConfiguration holds per-tenant scheduling settings: the slot grid,
// operating hours, look-ahead window, timezone, duration heuristics and the
// external calendar binding. A tenant may define a secondary calendar picked
// by contact tag (SelectorTag), e.g. a separate calendar for VIP customers.
type CalendarConfiguration struct {
	BaseModel
	TenantID         uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_calendar_configs_tenant_key" validate:"required"`
	Key              string    `json:"key" gorm:"size:100;not null;default:'default';uniqueIndex:idx_calendar_configs_tenant_key"`
	SelectorTag      string    `json:"selector_tag" gorm:"size:100"` // contact tag routing to this calendar; empty = default calendar
	SlotMinutes      int       `json:"slot_minutes" gorm:"not null;default:30" validate:"min=5,max=240"`
	OpenHour         int       `json:"open_hour" gorm:"not null;default:9" validate:"min=0,max=23"`
	OpenMinute       int       `json:"open_minute" gorm:"not null;default:0" validate:"min=0,max=59"`
	CloseHour        int       `json:"close_hour" gorm:"not null;default:18" validate:"min=0,max=24"`
	CloseMinute      int       `json:"close_minute" gorm:"not null;default:0" validate:"min=0,max=59"`
	LookaheadDays    int       `json:"lookahead_days" gorm:"not null;default:14" validate:"min=1,max=90"`
	Timezone         string    `json:"timezone" gorm:"size:64;not null;default:'UTC'"`
	StaffModel       bool      `json:"staff_model" gorm:"default:false"`        // staff availability drives free slots
	RequireStaffPair bool      `json:"require_staff_pair" gorm:"default:false"` // bookings need two free employees
	DefaultMinutes   int       `json:"default_minutes" gorm:"not null;default:60" validate:"min=5"`
	ExtendedMinutes  int       `json:"extended_minutes" gorm:"not null;default:120" validate:"min=5"`
	ExtendedKeywords []string  `json:"extended_keywords" gorm:"type:jsonb;serializer:json"` // title/description keywords that select ExtendedMinutes
	ExternalCalendar string    `json:"external_calendar" gorm:"size:200"`                   // external provider calendar id; empty = none

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CalendarConfiguration
func (CalendarConfiguration) TableName() string {
	return "calendar_configurations"
}

// Location resolves the configured timezone, falling back to UTC.
func (c *CalendarConfiguration) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// OpensAt returns the operating-hours open instant for the given day in the
// configured timezone.
func (c *CalendarConfiguration) OpensAt(day time.Time) time.Time {
	loc := c.Location()
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.OpenHour, c.OpenMinute, 0, 0, loc)
}

// ClosesAt returns the operating-hours close instant for the given day in the
// configured timezone.
func (c *CalendarConfiguration) ClosesAt(day time.Time) time.Time {
	loc := c.Location()
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.CloseHour, c.CloseMinute, 0, 0, loc)
}

// Validate checks internal consistency beyond field-level tags.
func (c *CalendarConfiguration) Validate() error {
	open := c.OpenHour*60 + c.OpenMinute
	close := c.CloseHour*60 + c.CloseMinute
	if close <= open {
		return fmt.Errorf("closing time %02d:%02d must be after opening time %02d:%02d",
			c.CloseHour, c.CloseMinute, c.OpenHour, c.OpenMinute)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}
