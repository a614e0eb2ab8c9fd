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

// TenantService handles business logic for tenants and their calendar
// configurations
type TenantService struct {
	repo       repository.TenantRepositoryInterface
	configRepo repository.CalendarConfigRepositoryInterface
	validator  *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, configRepo repository.CalendarConfigRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:       repo,
		configRepo: configRepo,
		validator:  validator,
	}
}

// CreateTenantRequest represents the data needed to create a tenant
type CreateTenantRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	DisplayName string          `json:"display_name" validate:"max=200"`
	Timezone    string          `json:"timezone" validate:"omitempty,max=64"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

// UpdateTenantRequest represents the data needed to update a tenant
type UpdateTenantRequest struct {
	DisplayName *string         `json:"display_name" validate:"omitempty,max=200"`
	Timezone    *string         `json:"timezone" validate:"omitempty,max=64"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Timezone    string          `json:"timezone"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CalendarConfigRequest represents a calendar configuration upsert
type CalendarConfigRequest struct {
	Key              string   `json:"key" validate:"omitempty,max=100"`
	SelectorTag      string   `json:"selector_tag" validate:"max=100"`
	SlotMinutes      int      `json:"slot_minutes" validate:"omitempty,min=5,max=240"`
	OpenHour         int      `json:"open_hour" validate:"min=0,max=23"`
	OpenMinute       int      `json:"open_minute" validate:"min=0,max=59"`
	CloseHour        int      `json:"close_hour" validate:"min=0,max=24"`
	CloseMinute      int      `json:"close_minute" validate:"min=0,max=59"`
	LookaheadDays    int      `json:"lookahead_days" validate:"omitempty,min=1,max=90"`
	Timezone         string   `json:"timezone" validate:"omitempty,max=64"`
	StaffModel       bool     `json:"staff_model"`
	RequireStaffPair bool     `json:"require_staff_pair"`
	DefaultMinutes   int      `json:"default_minutes" validate:"omitempty,min=5"`
	ExtendedMinutes  int      `json:"extended_minutes" validate:"omitempty,min=5"`
	ExtendedKeywords []string `json:"extended_keywords"`
	ExternalCalendar string   `json:"external_calendar" validate:"max=200"`
}

// Create creates a new tenant
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTenantExists
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	tenant := &models.Tenant{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Timezone:    timezone,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// GetAll retrieves tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tenants, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *s.toResponse(&tenants[i])
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a tenant
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if req.DisplayName != nil {
		tenant.DisplayName = *req.DisplayName
	}
	if req.Timezone != nil {
		tenant.Timezone = *req.Timezone
	}
	if req.Metadata != nil {
		tenant.Metadata = req.Metadata
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// UpsertCalendarConfig creates or replaces a tenant's calendar configuration
func (s *TenantService) UpsertCalendarConfig(tenantID uuid.UUID, req *CalendarConfigRequest) (*models.CalendarConfiguration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	config := &models.CalendarConfiguration{
		TenantID:         tenantID,
		Key:              req.Key,
		SelectorTag:      req.SelectorTag,
		SlotMinutes:      req.SlotMinutes,
		OpenHour:         req.OpenHour,
		OpenMinute:       req.OpenMinute,
		CloseHour:        req.CloseHour,
		CloseMinute:      req.CloseMinute,
		LookaheadDays:    req.LookaheadDays,
		Timezone:         req.Timezone,
		StaffModel:       req.StaffModel,
		RequireStaffPair: req.RequireStaffPair,
		DefaultMinutes:   req.DefaultMinutes,
		ExtendedMinutes:  req.ExtendedMinutes,
		ExtendedKeywords: req.ExtendedKeywords,
		ExternalCalendar: req.ExternalCalendar,
	}
	applyConfigDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, apperrors.NewValidationError("calendar", err.Error())
	}

	if err := s.configRepo.Upsert(config); err != nil {
		return nil, fmt.Errorf("failed to save calendar configuration: %w", err)
	}
	return config, nil
}

// GetCalendarConfigs lists a tenant's calendar configurations
func (s *TenantService) GetCalendarConfigs(tenantID uuid.UUID) ([]models.CalendarConfiguration, error) {
	if _, err := s.repo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	configs, err := s.configRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar configurations: %w", err)
	}
	return configs, nil
}

// applyConfigDefaults fills unset calendar configuration fields
func applyConfigDefaults(config *models.CalendarConfiguration) {
	if config.Key == "" {
		config.Key = "default"
	}
	if config.SlotMinutes == 0 {
		config.SlotMinutes = 30
	}
	if config.OpenHour == 0 && config.OpenMinute == 0 {
		config.OpenHour = 9
	}
	if config.CloseHour == 0 && config.CloseMinute == 0 {
		config.CloseHour = 18
	}
	if config.LookaheadDays == 0 {
		config.LookaheadDays = 14
	}
	if config.Timezone == "" {
		config.Timezone = "UTC"
	}
	if config.DefaultMinutes == 0 {
		config.DefaultMinutes = 60
	}
	if config.ExtendedMinutes == 0 {
		config.ExtendedMinutes = 120
	}
}

// toResponse converts a tenant model to a response
func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:          tenant.ID,
		Name:        tenant.Name,
		DisplayName: tenant.DisplayName,
		Timezone:    tenant.Timezone,
		Metadata:    tenant.Metadata,
		CreatedAt:   tenant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   tenant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
