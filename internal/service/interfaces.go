package service

import (
	"context"

	"whatsapp-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the interface for the lead allocator
type AssignmentServiceInterface interface {
	Assign(req *AssignLeadRequest) (*AssignmentResponse, error)
	Release(req *ReleaseLeadRequest) (*AssignmentResponse, error)
	GetActive(contactID uuid.UUID, channel string) (*AssignmentResponse, error)
}

// AvailabilityServiceInterface defines the interface for the availability service
type AvailabilityServiceInterface interface {
	FreeSlots(ctx context.Context, req *FreeSlotsRequest) (*FreeSlotsResponse, error)
}

// AppointmentServiceInterface defines the interface for the appointment service
type AppointmentServiceInterface interface {
	Create(ctx context.Context, req *CreateAppointmentRequest) (*AppointmentResponse, error)
	Reschedule(ctx context.Context, req *RescheduleAppointmentRequest) (*AppointmentResponse, error)
	Cancel(ctx context.Context, req *CancelAppointmentRequest) (*AppointmentResponse, error)
	SearchUpcoming(tenantID, contactID uuid.UUID, limit int) (*AppointmentListResponse, error)
	GetByID(tenantID, id uuid.UUID) (*AppointmentResponse, error)
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	UpsertCalendarConfig(tenantID uuid.UUID, req *CalendarConfigRequest) (*models.CalendarConfiguration, error)
	GetCalendarConfigs(tenantID uuid.UUID) ([]models.CalendarConfiguration, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	UpsertChannelSetting(employeeID uuid.UUID, req *ChannelSettingRequest) (*EmployeeResponse, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(req *CreateContactRequest) (*ContactResponse, error)
	GetByID(id uuid.UUID) (*ContactResponse, error)
	GetByPhone(tenantID uuid.UUID, phone string) (*ContactResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*ContactListResponse, error)
	Update(id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	AddTag(id uuid.UUID, tag string) (*ContactResponse, error)
	RemoveTag(id uuid.UUID, tag string) (*ContactResponse, error)
}
