package repository

import (
	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CalendarConfigRepository handles database operations for calendar configurations
type CalendarConfigRepository struct {
	db *gorm.DB
}

// NewCalendarConfigRepository creates a new calendar configuration repository
func NewCalendarConfigRepository(db *gorm.DB) *CalendarConfigRepository {
	return &CalendarConfigRepository{db: db}
}

// GetByTenant retrieves all calendar configurations for a tenant
func (r *CalendarConfigRepository) GetByTenant(tenantID uuid.UUID) ([]models.CalendarConfiguration, error) {
	var configs []models.CalendarConfiguration
	err := r.db.Where("tenant_id = ?", tenantID).Order("key").Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// GetDefault retrieves the default calendar configuration for a tenant
func (r *CalendarConfigRepository) GetDefault(tenantID uuid.UUID) (*models.CalendarConfiguration, error) {
	var config models.CalendarConfiguration
	err := r.db.First(&config, "tenant_id = ? AND key = ?", tenantID, "default").Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// ResolveForTags picks the calendar configuration for a contact: the first
// configuration whose selector tag matches one of the contact's tags, falling
// back to the default configuration.
func (r *CalendarConfigRepository) ResolveForTags(tenantID uuid.UUID, tags []string) (*models.CalendarConfiguration, error) {
	configs, err := r.GetByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	var fallback *models.CalendarConfiguration
	for i := range configs {
		cfg := &configs[i]
		if cfg.SelectorTag != "" && tagSet[cfg.SelectorTag] {
			return cfg, nil
		}
		if cfg.Key == "default" {
			fallback = cfg
		}
	}
	if fallback == nil {
		fallback = &configs[0]
	}
	return fallback, nil
}

// Upsert creates or replaces a tenant's calendar configuration by key
func (r *CalendarConfigRepository) Upsert(config *models.CalendarConfiguration) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selector_tag", "slot_minutes", "open_hour", "open_minute",
			"close_hour", "close_minute", "lookahead_days", "timezone",
			"staff_model", "require_staff_pair", "default_minutes",
			"extended_minutes", "extended_keywords", "external_calendar",
			"updated_at",
		}),
	}).Create(config).Error
}
