package repository

import (
	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByPhone retrieves a contact by phone within a tenant
func (r *ContactRepository) GetByPhone(tenantID uuid.UUID, phone string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "tenant_id = ? AND phone = ?", tenantID, phone).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByTenantID retrieves contacts for a tenant with pagination
func (r *ContactRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// AddTag adds a tag to a contact, locking the row so concurrent tag writes
// do not lose updates. Returns the updated contact.
func (r *ContactRepository) AddTag(id uuid.UUID, tag string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockContact(tx, id, &contact); err != nil {
			return err
		}
		if !contact.AddTag(tag) {
			return nil
		}
		return tx.Model(&contact).Update("tags", contact.Tags).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// RemoveTag removes a tag from a contact under a row lock. Returns the
// updated contact and whether the tag was present.
func (r *ContactRepository) RemoveTag(id uuid.UUID, tag string) (*models.Contact, bool, error) {
	var contact models.Contact
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockContact(tx, id, &contact); err != nil {
			return err
		}
		if !contact.RemoveTag(tag) {
			return nil
		}
		removed = true
		return tx.Model(&contact).Update("tags", contact.Tags).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &contact, removed, nil
}
