package repository

import (
	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChannelCandidate is an employee joined with their setting for one channel,
// as consumed by the lead allocator.
type ChannelCandidate struct {
	Employee     models.Employee
	Weight       float64
	MonthlyQuota *int
}

// EmployeeRepository handles database operations for employees and their
// per-channel settings
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByName retrieves an employee by name within a tenant
func (r *EmployeeRepository) GetByName(tenantID uuid.UUID, name string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByTenantID retrieves all employees for a tenant with pagination
func (r *EmployeeRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Preload("ChannelSettings").
		Limit(limit).Offset(offset).Order("name").
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetActiveByTenant retrieves all active employees for a tenant. This is the
// staff roster the appointment scheduler selects from.
func (r *EmployeeRepository) GetActiveByTenant(tenantID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("name").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetChannelCandidates retrieves active employees of the given role that are
// enabled for the channel, joined with their channel weight and quota.
func (r *EmployeeRepository) GetChannelCandidates(tenantID uuid.UUID, channel string, role models.EmployeeRole) ([]ChannelCandidate, error) {
	type row struct {
		models.Employee
		Weight       float64
		MonthlyQuota *int
	}
	var rows []row

	err := r.db.Model(&models.Employee{}).
		Select("employees.*, employee_channel_settings.weight AS weight, employee_channel_settings.monthly_quota AS monthly_quota").
		Joins("JOIN employee_channel_settings ON employee_channel_settings.employee_id = employees.id").
		Where("employees.tenant_id = ? AND employees.is_active = ? AND employees.role = ?", tenantID, true, role).
		Where("employee_channel_settings.channel = ? AND employee_channel_settings.enabled = ?", channel, true).
		Order("employees.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	candidates := make([]ChannelCandidate, len(rows))
	for i, rw := range rows {
		candidates[i] = ChannelCandidate{
			Employee:     rw.Employee,
			Weight:       rw.Weight,
			MonthlyQuota: rw.MonthlyQuota,
		}
	}
	return candidates, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// UpsertChannelSetting creates or updates an employee's setting for a channel
func (r *EmployeeRepository) UpsertChannelSetting(setting *models.EmployeeChannelSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "channel"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"enabled", "weight", "monthly_quota", "updated_at",
		}),
	}).Create(setting).Error
}

// GetChannelSettings retrieves all channel settings for an employee
func (r *EmployeeRepository) GetChannelSettings(employeeID uuid.UUID) ([]models.EmployeeChannelSetting, error) {
	var settings []models.EmployeeChannelSetting
	err := r.db.Where("employee_id = ?", employeeID).Order("channel").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
