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

// ContactService handles business logic for contacts
type ContactService struct {
	repo           repository.ContactRepositoryInterface
	tenantRepo     repository.TenantRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	employeeRepo   repository.EmployeeRepositoryInterface
	validator      *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:           repo,
		tenantRepo:     tenantRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		validator:      validator,
	}
}

// CreateContactRequest represents the data needed to create a contact
type CreateContactRequest struct {
	TenantID    uuid.UUID       `json:"tenant_id" validate:"required"`
	Phone       string          `json:"phone" validate:"required,max=20"`
	DisplayName string          `json:"display_name" validate:"max=200"`
	Tags        []string        `json:"tags"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

// UpdateContactRequest represents the data needed to update a contact
type UpdateContactRequest struct {
	DisplayName *string         `json:"display_name" validate:"omitempty,max=200"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

// ContactResponse represents the response data for a contact
type ContactResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Phone       string          `json:"phone"`
	DisplayName string          `json:"display_name"`
	Tags        []string        `json:"tags"`
	Suppressed  bool            `json:"suppressed"` // true when the "stop bot" tag is set
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new contact
func (s *ContactService) Create(req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	if _, err := s.repo.GetByPhone(req.TenantID, req.Phone); err == nil {
		return nil, apperrors.ErrContactExists
	}

	contact := &models.Contact{
		TenantID:    req.TenantID,
		Phone:       req.Phone,
		DisplayName: req.DisplayName,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return s.toResponse(contact), nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return s.toResponse(contact), nil
}

// GetByPhone retrieves a contact by phone number within a tenant
func (s *ContactService) GetByPhone(tenantID uuid.UUID, phone string) (*ContactResponse, error) {
	contact, err := s.repo.GetByPhone(tenantID, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return s.toResponse(contact), nil
}

// GetByTenant retrieves contacts for a tenant with pagination
func (s *ContactService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*ContactListResponse, error) {
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

	contacts, total, err := s.repo.GetByTenantID(tenantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *s.toResponse(&contacts[i])
	}

	return &ContactListResponse{
		Contacts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a contact's profile fields. Tags are managed through AddTag
// and RemoveTag so marker tags stay consistent with assignment records.
func (s *ContactService) Update(id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if req.DisplayName != nil {
		contact.DisplayName = *req.DisplayName
	}
	if req.Metadata != nil {
		contact.Metadata = req.Metadata
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return s.toResponse(contact), nil
}

// AddTag adds a tag to a contact
func (s *ContactService) AddTag(id uuid.UUID, tag string) (*ContactResponse, error) {
	if tag == "" {
		return nil, apperrors.NewValidationError("tag", "must not be empty")
	}

	contact, err := s.repo.AddTag(id, tag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}
	return s.toResponse(contact), nil
}

// RemoveTag removes a tag from a contact. An employee-name marker tag is a
// projection of the active assignment record, so removing one releases the
// underlying assignment; the record, not the tag, is the source of truth.
func (s *ContactService) RemoveTag(id uuid.UUID, tag string) (*ContactResponse, error) {
	contact, removed, err := s.repo.RemoveTag(id, tag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to remove tag: %w", err)
	}
	if removed {
		if err := s.releaseIfMarkerTag(contact, tag); err != nil {
			return nil, err
		}
	}
	return s.toResponse(contact), nil
}

// releaseIfMarkerTag deactivates the contact's active assignments held by the
// employee the removed tag names. Plain tags resolve to no employee and are
// left alone.
func (s *ContactService) releaseIfMarkerTag(contact *models.Contact, tag string) error {
	employee, err := s.employeeRepo.GetByName(contact.TenantID, tag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve tag employee: %w", err)
	}

	records, err := s.assignmentRepo.GetActiveByContact(contact.ID)
	if err != nil {
		return fmt.Errorf("failed to list active assignments: %w", err)
	}
	for _, record := range records {
		if record.EmployeeID != employee.ID {
			continue
		}
		if _, err := s.assignmentRepo.Deactivate(contact.ID, record.Channel, tag); err != nil {
			return fmt.Errorf("failed to release assignment: %w", err)
		}
	}
	return nil
}

// toResponse converts a contact model to a response
func (s *ContactService) toResponse(contact *models.Contact) *ContactResponse {
	tags := contact.Tags
	if tags == nil {
		tags = []string{}
	}
	return &ContactResponse{
		ID:          contact.ID,
		TenantID:    contact.TenantID,
		Phone:       contact.Phone,
		DisplayName: contact.DisplayName,
		Tags:        tags,
		Suppressed:  contact.AutomationSuppressed(),
		Metadata:    contact.Metadata,
		CreatedAt:   contact.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   contact.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
