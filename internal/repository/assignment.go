package repository

import (
	"errors"
	"time"

	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

// AssignmentRepository handles database operations for assignment records and
// the derived monthly allocation counters. Record insert/deactivate and the
// counter mutation always happen inside one transaction; the at-most-one
// active record per (contact, channel) rule is a partial unique index, so a
// concurrent duplicate attempt fails at commit rather than racing a read.
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetByID retrieves an assignment record by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.AssignmentRecord, error) {
	var record models.AssignmentRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetActive retrieves the active assignment record for a contact and channel
func (r *AssignmentRepository) GetActive(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error) {
	var record models.AssignmentRecord
	err := r.db.First(&record,
		"contact_id = ? AND channel = ? AND status = ?",
		contactID, channel, models.AssignmentStatusActive,
	).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetActiveByContact retrieves all active assignment records for a contact
// across channels
func (r *AssignmentRepository) GetActiveByContact(contactID uuid.UUID) ([]models.AssignmentRecord, error) {
	var records []models.AssignmentRecord
	err := r.db.Where("contact_id = ? AND status = ?", contactID, models.AssignmentStatusActive).
		Order("channel").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetByEmployeeAndPeriod retrieves assignment records for an employee in a period
func (r *AssignmentRepository) GetByEmployeeAndPeriod(employeeID uuid.UUID, period string, limit, offset int) ([]models.AssignmentRecord, int64, error) {
	var records []models.AssignmentRecord
	var total int64

	query := r.db.Model(&models.AssignmentRecord{}).
		Where("employee_id = ? AND period = ?", employeeID, period)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// CreateActive inserts an active assignment record, increments the monthly
// counter and writes the employee-name marker tag onto the contact, all in
// one transaction. If another worker already committed an active record for
// the same (contact, channel), the existing record is returned with
// created=false and nothing is written.
func (r *AssignmentRepository) CreateActive(record *models.AssignmentRecord, markerTag string) (created bool, existing *models.AssignmentRecord, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			if isUniqueViolation(err) {
				var current models.AssignmentRecord
				if ferr := tx.First(&current,
					"contact_id = ? AND channel = ? AND status = ?",
					record.ContactID, record.Channel, models.AssignmentStatusActive,
				).Error; ferr != nil {
					return ferr
				}
				existing = &current
				return nil
			}
			return err
		}
		created = true

		if err := incrementCounter(tx, record, 1); err != nil {
			return err
		}

		var contact models.Contact
		if err := lockContact(tx, record.ContactID, &contact); err != nil {
			return err
		}
		if contact.AddTag(markerTag) {
			if err := tx.Model(&contact).Update("tags", contact.Tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return created, existing, nil
}

// Deactivate marks the active assignment record for (contact, channel)
// inactive, decrements the counter and removes the marker tag, all in one
// transaction. Returns the deactivated record.
func (r *AssignmentRepository) Deactivate(contactID uuid.UUID, channel string, markerTag string) (*models.AssignmentRecord, error) {
	var record models.AssignmentRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record,
				"contact_id = ? AND channel = ? AND status = ?",
				contactID, channel, models.AssignmentStatusActive,
			).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&record).Updates(map[string]interface{}{
			"status":         models.AssignmentStatusInactive,
			"deactivated_at": now,
		}).Error; err != nil {
			return err
		}
		record.Status = models.AssignmentStatusInactive
		record.DeactivatedAt = &now

		if err := incrementCounter(tx, &record, -1); err != nil {
			return err
		}

		var contact models.Contact
		if err := lockContact(tx, contactID, &contact); err != nil {
			return err
		}
		if contact.RemoveTag(markerTag) {
			if err := tx.Model(&contact).Update("tags", contact.Tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// incrementCounter upserts the monthly allocation counter row for the
// record's (employee, channel, period) by delta, never dropping below zero.
func incrementCounter(tx *gorm.DB, record *models.AssignmentRecord, delta int) error {
	if delta > 0 {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "channel"}, {Name: "period"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("monthly_allocation_counters.count + ?", delta),
				"updated_at": time.Now(),
			}),
		}).Create(&models.MonthlyAllocationCounter{
			TenantID:   record.TenantID,
			EmployeeID: record.EmployeeID,
			Channel:    record.Channel,
			Period:     record.Period,
			Count:      delta,
		}).Error
	}
	return tx.Model(&models.MonthlyAllocationCounter{}).
		Where("employee_id = ? AND channel = ? AND period = ?", record.EmployeeID, record.Channel, record.Period).
		Update("count", gorm.Expr("GREATEST(count + ?, 0)", delta)).Error
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
