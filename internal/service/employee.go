package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees and their per-channel
// assignment settings
type EmployeeService struct {
	repo       repository.EmployeeRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	TenantID    uuid.UUID       `json:"tenant_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=100"`
	FullName    string          `json:"full_name" validate:"max=200"`
	Email       string          `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber string          `json:"phone_number" validate:"required,max=20"`
	Role        *string         `json:"role" example:"sales" default:"sales"` // Optional: defaults to "sales" if not provided. Valid values: sales, manager, admin
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
	IsActive    *bool           `json:"is_active" example:"true" default:"true"` // Optional: defaults to true if not provided
}

// UpdateEmployeeRequest represents the data needed to update an employee
type UpdateEmployeeRequest struct {
	FullName    *string         `json:"full_name" validate:"omitempty,max=200"`
	Email       *string         `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string         `json:"phone_number" validate:"omitempty,max=20"`
	Role        *string         `json:"role"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
	IsActive    *bool           `json:"is_active"`
}

// ChannelSettingRequest represents an employee channel setting upsert
type ChannelSettingRequest struct {
	Channel      string  `json:"channel" validate:"required,max=100"`
	Enabled      bool    `json:"enabled"`
	Weight       float64 `json:"weight" validate:"gte=0"`
	MonthlyQuota *int    `json:"monthly_quota,omitempty" validate:"omitempty,min=0"` // nil means unlimited
}

// ChannelSettingResponse represents one channel setting
type ChannelSettingResponse struct {
	Channel      string  `json:"channel"`
	Enabled      bool    `json:"enabled"`
	Weight       float64 `json:"weight"`
	MonthlyQuota *int    `json:"monthly_quota,omitempty"`
}

// EmployeeResponse represents the response data for an employee
type EmployeeResponse struct {
	ID              uuid.UUID                `json:"id"`
	TenantID        uuid.UUID                `json:"tenant_id"`
	Name            string                   `json:"name"`
	FullName        string                   `json:"full_name"`
	Email           string                   `json:"email"`
	PhoneNumber     string                   `json:"phone_number"`
	Role            string                   `json:"role"`
	IsActive        bool                     `json:"is_active"`
	Metadata        json.RawMessage          `json:"metadata,omitempty" swaggertype:"object"`
	ChannelSettings []ChannelSettingResponse `json:"channel_settings,omitempty"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	// Name doubles as the contact marker tag, so it must be unique per tenant.
	if _, err := s.repo.GetByName(req.TenantID, req.Name); err == nil {
		return nil, apperrors.ErrEmployeeExists
	}

	role := models.EmployeeRoleSales
	if req.Role != nil {
		role = models.EmployeeRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be one of sales, manager, admin")
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := &models.Employee{
		TenantID:    req.TenantID,
		Name:        req.Name,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    isActive,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// GetByTenant retrieves employees for a tenant with pagination
func (s *EmployeeService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	employees, total, err := s.repo.GetByTenantID(tenantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *s.toResponse(&employees[i])
	}

	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role := models.EmployeeRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be one of sales, manager, admin")
		}
		employee.Role = role
	}
	if req.Metadata != nil {
		employee.Metadata = req.Metadata
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// UpsertChannelSetting creates or updates an employee's setting for a channel
func (s *EmployeeService) UpsertChannelSetting(employeeID uuid.UUID, req *ChannelSettingRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	setting := &models.EmployeeChannelSetting{
		EmployeeID:   employeeID,
		Channel:      req.Channel,
		Enabled:      req.Enabled,
		Weight:       req.Weight,
		MonthlyQuota: req.MonthlyQuota,
	}
	if err := s.repo.UpsertChannelSetting(setting); err != nil {
		return nil, fmt.Errorf("failed to save channel setting: %w", err)
	}

	settings, err := s.repo.GetChannelSettings(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel settings: %w", err)
	}
	employee.ChannelSettings = settings
	return s.toResponse(employee), nil
}

// toResponse converts an employee model to a response
func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:          employee.ID,
		TenantID:    employee.TenantID,
		Name:        employee.Name,
		FullName:    employee.FullName,
		Email:       employee.Email,
		PhoneNumber: employee.PhoneNumber,
		Role:        string(employee.Role),
		IsActive:    employee.IsActive,
		Metadata:    employee.Metadata,
		CreatedAt:   employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, setting := range employee.ChannelSettings {
		resp.ChannelSettings = append(resp.ChannelSettings, ChannelSettingResponse{
			Channel:      setting.Channel,
			Enabled:      setting.Enabled,
			Weight:       setting.Weight,
			MonthlyQuota: setting.MonthlyQuota,
		})
	}
	return resp
}
