package repository

import (
	"time"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingParams controls how Book selects staff and detects conflicts.
type BookingParams struct {
	// StaffModel: staff availability drives conflicts; without it any
	// overlapping appointment conflicts (single shared resource).
	StaffModel bool
	// RequirePair requires two free employees for the booking.
	RequirePair bool
	// Roster is the set of active staff eligible for selection.
	Roster []uuid.UUID
	// ExcludeID marks the appointment being rescheduled: it is skipped in
	// conflict checks (an appointment never conflicts with itself) and its
	// row is updated instead of inserting a new one.
	ExcludeID *uuid.UUID
}

// AppointmentRepository handles database operations for appointments. Book
// serializes per tenant with an advisory transaction lock before scanning for
// overlaps: locking existing rows alone would not stop two transactions from
// inserting into the same empty slot.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// GetOverlapping retrieves non-cancelled appointments overlapping
// [start, end) for a tenant, excluding excludeID when set. Read-only; used
// by the availability calculator.
func (r *AppointmentRepository) GetOverlapping(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error) {
	query := r.db.Where(
		"tenant_id = ? AND status = ? AND scheduled_at < ? AND scheduled_at + (duration_minutes * INTERVAL '1 minute') > ?",
		tenantID, models.AppointmentStatusScheduled, end, start,
	)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var appointments []models.Appointment
	err := query.Order("scheduled_at").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByContactOnDate retrieves scheduled appointments for a contact within
// [dayStart, dayEnd). Used for reschedule/cancel lookup by date hint.
func (r *AppointmentRepository) FindByContactOnDate(tenantID, contactID uuid.UUID, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where(
		"tenant_id = ? AND contact_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at < ?",
		tenantID, contactID, models.AppointmentStatusScheduled, dayStart, dayEnd,
	).Order("scheduled_at").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// GetUpcoming retrieves the next scheduled appointments for a contact
func (r *AppointmentRepository) GetUpcoming(contactID uuid.UUID, after time.Time, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where(
		"contact_id = ? AND status = ? AND scheduled_at >= ?",
		contactID, models.AppointmentStatusScheduled, after,
	).Order("scheduled_at").Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Book inserts (or, on reschedule, updates) the appointment inside one
// transaction. A per-tenant advisory lock is taken first so concurrent
// bookings cannot both pass the overlap scan; conflicts and busy staff are
// then derived from the scheduled rows. Returns ConflictDetectedError or
// ErrInsufficientStaff without writing anything.
func (r *AppointmentRepository) Book(appointment *models.Appointment, params BookingParams) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// The overlap scan cannot see rows a concurrent transaction has
		// not committed yet, so empty-slot races must be excluded up
		// front. Released automatically at commit or rollback.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			appointment.TenantID.String(),
		).Error; err != nil {
			return err
		}

		end := appointment.EndsAt()
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(
			"tenant_id = ? AND status = ? AND scheduled_at < ? AND scheduled_at + (duration_minutes * INTERVAL '1 minute') > ?",
			appointment.TenantID, models.AppointmentStatusScheduled, end, appointment.ScheduledAt,
		)
		if params.ExcludeID != nil {
			query = query.Where("id <> ?", *params.ExcludeID)
		}

		var overlapping []models.Appointment
		if err := query.Order("scheduled_at").Find(&overlapping).Error; err != nil {
			return err
		}

		if params.StaffModel {
			primary, second, err := selectStaff(params, overlapping)
			if err != nil {
				return err
			}
			appointment.PrimaryStaffID = primary
			appointment.SecondStaffID = second
		} else if len(overlapping) > 0 {
			return apperrors.NewConflictError(internalConflicts(overlapping))
		}

		if params.ExcludeID != nil {
			return tx.Model(&models.Appointment{}).
				Where("id = ?", *params.ExcludeID).
				Updates(map[string]interface{}{
					"scheduled_at":     appointment.ScheduledAt,
					"duration_minutes": appointment.DurationMinutes,
					"title":            appointment.Title,
					"description":      appointment.Description,
					"primary_staff_id": appointment.PrimaryStaffID,
					"second_staff_id":  appointment.SecondStaffID,
					"metadata":         appointment.Metadata,
				}).Error
		}
		return tx.Create(appointment).Error
	})
}

// Cancel transitions a scheduled appointment to cancelled under a row lock.
// Rows are never deleted.
func (r *AppointmentRepository) Cancel(id uuid.UUID, metadata []byte) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&appointment, "id = ?", id).Error; err != nil {
			return err
		}
		if appointment.Status != models.AppointmentStatusScheduled {
			return apperrors.ErrAppointmentNotActive
		}
		if err := tx.Model(&appointment).Updates(map[string]interface{}{
			"status":   models.AppointmentStatusCancelled,
			"metadata": metadata,
		}).Error; err != nil {
			return err
		}
		appointment.Status = models.AppointmentStatusCancelled
		appointment.Metadata = metadata
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Update persists mutable appointment fields outside the booking path
// (external event id, metadata flags).
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// selectStaff picks staff for the interval: the roster minus everyone busy
// in an overlapping appointment. Two free employees form a pair; exactly one
// is acceptable only when a pair is not required.
func selectStaff(params BookingParams, overlapping []models.Appointment) (*uuid.UUID, *uuid.UUID, error) {
	busy := make(map[uuid.UUID]bool)
	for _, appt := range overlapping {
		for _, id := range appt.StaffIDs() {
			busy[id] = true
		}
	}

	var free []uuid.UUID
	for _, id := range params.Roster {
		if !busy[id] {
			free = append(free, id)
		}
	}

	switch {
	case len(free) >= 2:
		return &free[0], &free[1], nil
	case len(free) == 1 && !params.RequirePair:
		return &free[0], nil, nil
	default:
		return nil, nil, apperrors.ErrInsufficientStaff
	}
}

// internalConflicts converts overlapping appointments into the
// origin-tagged conflict set returned to callers.
func internalConflicts(overlapping []models.Appointment) []apperrors.ConflictingInterval {
	conflicts := make([]apperrors.ConflictingInterval, len(overlapping))
	for i, appt := range overlapping {
		conflicts[i] = apperrors.ConflictingInterval{
			Source: apperrors.ConflictSourceInternal,
			Title:  appt.Title,
			Start:  appt.ScheduledAt,
			End:    appt.EndsAt(),
		}
	}
	return conflicts
}
