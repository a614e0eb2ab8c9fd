package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Contact represents a chat contact of a tenant. Tags carry externally
// visible state: a tag equal to an employee's name marks ownership (written
// as a projection of the active assignment record), and the "stop bot" tag
// suppresses automation entirely.
type Contact struct {
	BaseModel
	TenantID    uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_contacts_tenant_phone" validate:"required"`
	Phone       string          `json:"phone" gorm:"size:20;not null;uniqueIndex:idx_contacts_tenant_phone" validate:"required,max=20"`
	DisplayName string          `json:"display_name" gorm:"size:200" validate:"max=200"`
	Tags        []string        `json:"tags" gorm:"type:jsonb;serializer:json"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// HasTag reports whether the contact carries the given tag.
func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends the tag if not already present and reports whether the tag set changed.
func (c *Contact) AddTag(tag string) bool {
	if c.HasTag(tag) {
		return false
	}
	c.Tags = append(c.Tags, tag)
	return true
}

// RemoveTag removes the tag and reports whether the tag set changed.
func (c *Contact) RemoveTag(tag string) bool {
	for i, t := range c.Tags {
		if t == tag {
			c.Tags = append(c.Tags[:i], c.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// AutomationSuppressed reports whether the bot kill-switch tag is set.
func (c *Contact) AutomationSuppressed() bool {
	return c.HasTag(StopBotTag)
}
