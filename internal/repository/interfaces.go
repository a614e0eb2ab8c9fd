package repository

import (
	"time"

	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByName(tenantID uuid.UUID, name string) (*models.Employee, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Employee, int64, error)
	GetActiveByTenant(tenantID uuid.UUID) ([]models.Employee, error)
	GetChannelCandidates(tenantID uuid.UUID, channel string, role models.EmployeeRole) ([]ChannelCandidate, error)
	Update(employee *models.Employee) error
	UpsertChannelSetting(setting *models.EmployeeChannelSetting) error
	GetChannelSettings(employeeID uuid.UUID) ([]models.EmployeeChannelSetting, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByPhone(tenantID uuid.UUID, phone string) (*models.Contact, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	AddTag(id uuid.UUID, tag string) (*models.Contact, error)
	RemoveTag(id uuid.UUID, tag string) (*models.Contact, bool, error)
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.AssignmentRecord, error)
	GetActive(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error)
	GetActiveByContact(contactID uuid.UUID) ([]models.AssignmentRecord, error)
	GetByEmployeeAndPeriod(employeeID uuid.UUID, period string, limit, offset int) ([]models.AssignmentRecord, int64, error)
	CreateActive(record *models.AssignmentRecord, markerTag string) (created bool, existing *models.AssignmentRecord, err error)
	Deactivate(contactID uuid.UUID, channel string, markerTag string) (*models.AssignmentRecord, error)
}

// CounterRepositoryInterface defines the interface for counter repository operations
type CounterRepositoryInterface interface {
	GetCount(employeeID uuid.UUID, channel, period string) (int, error)
	GetCounts(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error)
	GetByTenantAndPeriod(tenantID uuid.UUID, period string) ([]models.MonthlyAllocationCounter, error)
	Reconcile() (int64, error)
}

// AppointmentRepositoryInterface defines the interface for appointment repository operations
type AppointmentRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Appointment, error)
	GetOverlapping(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error)
	FindByContactOnDate(tenantID, contactID uuid.UUID, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	GetUpcoming(contactID uuid.UUID, after time.Time, limit int) ([]models.Appointment, error)
	Book(appointment *models.Appointment, params BookingParams) error
	Cancel(id uuid.UUID, metadata []byte) (*models.Appointment, error)
	Update(appointment *models.Appointment) error
}

// CalendarConfigRepositoryInterface defines the interface for calendar configuration repository operations
type CalendarConfigRepositoryInterface interface {
	GetByTenant(tenantID uuid.UUID) ([]models.CalendarConfiguration, error)
	GetDefault(tenantID uuid.UUID) (*models.CalendarConfiguration, error)
	ResolveForTags(tenantID uuid.UUID, tags []string) (*models.CalendarConfiguration, error)
	Upsert(config *models.CalendarConfiguration) error
}
