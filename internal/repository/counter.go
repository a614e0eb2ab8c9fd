package repository

import (
	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounterRepository reads and reconciles monthly allocation counters.
// Counters are only written through AssignmentRepository transactions or the
// Reconcile re-derivation; nothing else mutates them.
type CounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// GetCount returns the counter value for an employee, channel and period.
// A missing row means zero allocations.
func (r *CounterRepository) GetCount(employeeID uuid.UUID, channel, period string) (int, error) {
	var counter models.MonthlyAllocationCounter
	err := r.db.First(&counter,
		"employee_id = ? AND channel = ? AND period = ?",
		employeeID, channel, period,
	).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return counter.Count, nil
}

// GetCounts returns counter values keyed by employee for a tenant, channel
// and period. Employees without a row are simply absent (zero).
func (r *CounterRepository) GetCounts(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error) {
	var counters []models.MonthlyAllocationCounter
	err := r.db.Where("tenant_id = ? AND channel = ? AND period = ?", tenantID, channel, period).
		Find(&counters).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(counters))
	for _, c := range counters {
		counts[c.EmployeeID] = c.Count
	}
	return counts, nil
}

// GetByTenantAndPeriod retrieves counter rows for reporting
func (r *CounterRepository) GetByTenantAndPeriod(tenantID uuid.UUID, period string) ([]models.MonthlyAllocationCounter, error) {
	var counters []models.MonthlyAllocationCounter
	err := r.db.Where("tenant_id = ? AND period = ?", tenantID, period).
		Order("channel, count DESC").
		Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

// Reconcile re-derives every counter row from the active assignment records.
// Counters are incremental for performance; this periodically restores the
// invariant count == COUNT(active records) if anything ever drifted. Returns
// the number of rows it had to create or correct.
func (r *CounterRepository) Reconcile() (int64, error) {
	var repaired int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Refresh counters that have matching active records. Rows already
		// holding the derived count are skipped and not reported as drift.
		res := tx.Exec(`
			INSERT INTO monthly_allocation_counters (id, created_at, updated_at, tenant_id, employee_id, channel, period, count)
			SELECT gen_random_uuid(), NOW(), NOW(), tenant_id, employee_id, channel, period, COUNT(*)
			FROM assignment_records
			WHERE status = ?
			GROUP BY tenant_id, employee_id, channel, period
			ON CONFLICT (employee_id, channel, period)
			DO UPDATE SET count = EXCLUDED.count, updated_at = NOW()
			WHERE monthly_allocation_counters.count <> EXCLUDED.count
		`, models.AssignmentStatusActive)
		if res.Error != nil {
			return res.Error
		}
		repaired += res.RowsAffected

		// Zero counters whose records were all deactivated.
		res = tx.Exec(`
			UPDATE monthly_allocation_counters c
			SET count = 0, updated_at = NOW()
			WHERE count <> 0
			  AND NOT EXISTS (
				SELECT 1 FROM assignment_records a
				WHERE a.employee_id = c.employee_id
				  AND a.channel = c.channel
				  AND a.period = c.period
				  AND a.status = ?
			  )
		`, models.AssignmentStatusActive)
		if res.Error != nil {
			return res.Error
		}
		repaired += res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return repaired, nil
}
