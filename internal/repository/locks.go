package repository

import (
	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockContact loads a contact row FOR UPDATE inside the given transaction.
func lockContact(tx *gorm.DB, id uuid.UUID, contact *models.Contact) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(contact, "id = ?", id).Error
}
