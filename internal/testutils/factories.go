package testutils

import (
	"time"

	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-tenant-" + id.String()[:8],
		DisplayName: "Test Tenant",
		Timezone:    "UTC",
		Metadata:    nil,
	}
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.DisplayName = name
	return tenant
}

// WithTimezone sets a custom timezone for the tenant
func (f *TenantFactory) WithTimezone(tz string) *models.Tenant {
	tenant := f.Create()
	tenant.Timezone = tz
	return tenant
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Name:        "agent-" + id.String()[:8],
		FullName:    "Test Agent",
		Email:       "agent@test.com",
		PhoneNumber: "+15550100",
		Role:        models.EmployeeRoleSales,
		IsActive:    true,
		Metadata:    nil,
	}
}

// WithTenant sets the tenant ID for the employee
func (f *EmployeeFactory) WithTenant(tenantID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.TenantID = tenantID
	return employee
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	employee := f.Create()
	employee.Role = role
	return employee
}

// ChannelSettingFactory provides methods to create test EmployeeChannelSetting data
type ChannelSettingFactory struct{}

// NewChannelSettingFactory creates a new ChannelSettingFactory
func NewChannelSettingFactory() *ChannelSettingFactory {
	return &ChannelSettingFactory{}
}

// Create creates a test EmployeeChannelSetting with default values
func (f *ChannelSettingFactory) Create() *models.EmployeeChannelSetting {
	return &models.EmployeeChannelSetting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:   uuid.New(),
		Channel:      "whatsapp",
		Enabled:      true,
		Weight:       1,
		MonthlyQuota: nil,
	}
}

// WithEmployee sets the employee ID for the setting
func (f *ChannelSettingFactory) WithEmployee(employeeID uuid.UUID) *models.EmployeeChannelSetting {
	setting := f.Create()
	setting.EmployeeID = employeeID
	return setting
}

// WithWeight sets a custom weight for the setting
func (f *ChannelSettingFactory) WithWeight(weight float64) *models.EmployeeChannelSetting {
	setting := f.Create()
	setting.Weight = weight
	return setting
}

// WithQuota sets a monthly quota for the setting
func (f *ChannelSettingFactory) WithQuota(quota int) *models.EmployeeChannelSetting {
	setting := f.Create()
	setting.MonthlyQuota = &quota
	return setting
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create() *models.Contact {
	id := uuid.New()
	// Derive a unique phone from the UUID to avoid collisions across tests
	phone := "+1555" + id.String()[:7]

	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Phone:       phone,
		DisplayName: "Test Contact",
		Tags:        nil,
		Metadata:    nil,
	}
}

// WithTenant sets the tenant ID for the contact
func (f *ContactFactory) WithTenant(tenantID uuid.UUID) *models.Contact {
	contact := f.Create()
	contact.TenantID = tenantID
	return contact
}

// WithPhone sets a custom phone for the contact
func (f *ContactFactory) WithPhone(phone string) *models.Contact {
	contact := f.Create()
	contact.Phone = phone
	return contact
}

// WithTags sets the initial tag set for the contact
func (f *ContactFactory) WithTags(tags ...string) *models.Contact {
	contact := f.Create()
	contact.Tags = tags
	return contact
}

// AssignmentFactory provides methods to create test AssignmentRecord data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test AssignmentRecord with default values
func (f *AssignmentFactory) Create() *models.AssignmentRecord {
	return &models.AssignmentRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:         uuid.New(),
		EmployeeID:       uuid.New(),
		ContactID:        uuid.New(),
		Channel:          "whatsapp",
		Period:           models.PeriodOf(time.Now().UTC()),
		RoleAtAssignment: models.EmployeeRoleSales,
		WeightUsed:       1,
		Status:           models.AssignmentStatusActive,
	}
}

// WithTenant sets the tenant ID for the record
func (f *AssignmentFactory) WithTenant(tenantID uuid.UUID) *models.AssignmentRecord {
	record := f.Create()
	record.TenantID = tenantID
	return record
}

// WithEmployee sets the employee ID for the record
func (f *AssignmentFactory) WithEmployee(employeeID uuid.UUID) *models.AssignmentRecord {
	record := f.Create()
	record.EmployeeID = employeeID
	return record
}

// WithContact sets the contact ID for the record
func (f *AssignmentFactory) WithContact(contactID uuid.UUID) *models.AssignmentRecord {
	record := f.Create()
	record.ContactID = contactID
	return record
}

// AppointmentFactory provides methods to create test Appointment data
type AppointmentFactory struct{}

// NewAppointmentFactory creates a new AppointmentFactory
func NewAppointmentFactory() *AppointmentFactory {
	return &AppointmentFactory{}
}

// Create creates a test Appointment with default values
func (f *AppointmentFactory) Create() *models.Appointment {
	return &models.Appointment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:        uuid.New(),
		ContactID:       uuid.New(),
		Title:           "Test Appointment",
		Description:     "A test appointment",
		ScheduledAt:     time.Now().Add(24 * time.Hour).Truncate(time.Hour),
		DurationMinutes: 60,
		Status:          models.AppointmentStatusScheduled,
	}
}

// WithTenant sets the tenant ID for the appointment
func (f *AppointmentFactory) WithTenant(tenantID uuid.UUID) *models.Appointment {
	appointment := f.Create()
	appointment.TenantID = tenantID
	return appointment
}

// WithContact sets the contact ID for the appointment
func (f *AppointmentFactory) WithContact(contactID uuid.UUID) *models.Appointment {
	appointment := f.Create()
	appointment.ContactID = contactID
	return appointment
}

// WithStart sets the start time for the appointment
func (f *AppointmentFactory) WithStart(start time.Time) *models.Appointment {
	appointment := f.Create()
	appointment.ScheduledAt = start
	return appointment
}

// WithStaff sets the primary staff for the appointment
func (f *AppointmentFactory) WithStaff(staffID uuid.UUID) *models.Appointment {
	appointment := f.Create()
	appointment.PrimaryStaffID = &staffID
	return appointment
}

// CalendarConfigFactory provides methods to create test CalendarConfiguration data
type CalendarConfigFactory struct{}

// NewCalendarConfigFactory creates a new CalendarConfigFactory
func NewCalendarConfigFactory() *CalendarConfigFactory {
	return &CalendarConfigFactory{}
}

// Create creates a test CalendarConfiguration with default values
func (f *CalendarConfigFactory) Create() *models.CalendarConfiguration {
	return &models.CalendarConfiguration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:        uuid.New(),
		Key:             "default",
		SlotMinutes:     30,
		OpenHour:        9,
		CloseHour:       18,
		LookaheadDays:   14,
		Timezone:        "UTC",
		DefaultMinutes:  60,
		ExtendedMinutes: 120,
	}
}

// WithTenant sets the tenant ID for the configuration
func (f *CalendarConfigFactory) WithTenant(tenantID uuid.UUID) *models.CalendarConfiguration {
	config := f.Create()
	config.TenantID = tenantID
	return config
}

// WithSelectorTag sets the selector tag and a non-default key
func (f *CalendarConfigFactory) WithSelectorTag(tag string) *models.CalendarConfiguration {
	config := f.Create()
	config.Key = tag
	config.SelectorTag = tag
	return config
}

// WithStaffModel enables staff-availability scheduling
func (f *CalendarConfigFactory) WithStaffModel(requirePair bool) *models.CalendarConfiguration {
	config := f.Create()
	config.StaffModel = true
	config.RequireStaffPair = requirePair
	return config
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant         *TenantFactory
	Employee       *EmployeeFactory
	ChannelSetting *ChannelSettingFactory
	Contact        *ContactFactory
	Assignment     *AssignmentFactory
	Appointment    *AppointmentFactory
	CalendarConfig *CalendarConfigFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:         NewTenantFactory(),
		Employee:       NewEmployeeFactory(),
		ChannelSetting: NewChannelSettingFactory(),
		Contact:        NewContactFactory(),
		Assignment:     NewAssignmentFactory(),
		Appointment:    NewAppointmentFactory(),
		CalendarConfig: NewCalendarConfigFactory(),
	}
}

// CreateTenantHierarchy creates a tenant with one enabled sales employee, a
// contact and a default calendar configuration, all wired together.
func (fs *FactorySet) CreateTenantHierarchy() (*models.Tenant, *models.Employee, *models.EmployeeChannelSetting, *models.Contact, *models.CalendarConfiguration) {
	tenant := fs.Tenant.Create()
	employee := fs.Employee.WithTenant(tenant.ID)
	setting := fs.ChannelSetting.WithEmployee(employee.ID)
	contact := fs.Contact.WithTenant(tenant.ID)
	config := fs.CalendarConfig.WithTenant(tenant.ID)
	return tenant, employee, setting, contact, config
}
