package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/logger"
	"whatsapp-crm-backend/internal/metrics"
	"whatsapp-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService implements the lead allocator: weighted fair-share
// selection over role tiers with monthly quotas. Selection is a pure
// computation over a candidate snapshot; durability and the at-most-one
// active record rule live in the repository transaction.
type AssignmentService struct {
	repo         repository.AssignmentRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	contactRepo  repository.ContactRepositoryInterface
	counterRepo  repository.CounterRepositoryInterface
	tenantRepo   repository.TenantRepositoryInterface
	notifier     NotifierInterface
	validator    *validator.Validate
	log          *logger.Logger

	now       func() time.Time
	randFloat func() float64
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	counterRepo repository.CounterRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	notifier NotifierInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		employeeRepo: employeeRepo,
		contactRepo:  contactRepo,
		counterRepo:  counterRepo,
		tenantRepo:   tenantRepo,
		notifier:     notifier,
		validator:    validator,
		log:          log,
		now:          time.Now,
		randFloat:    rand.Float64,
	}
}

// AssignLeadRequest represents the request to assign a lead to an employee
type AssignLeadRequest struct {
	TenantID  uuid.UUID `json:"tenant_id" validate:"required"`
	ContactID uuid.UUID `json:"contact_id" validate:"required"`
	Channel   string    `json:"channel" validate:"required,max=100"`
	Trigger   string    `json:"trigger,omitempty" validate:"max=500"` // opaque context, stored on the record for audit
}

// ReleaseLeadRequest represents the request to release a lead assignment
type ReleaseLeadRequest struct {
	TenantID  uuid.UUID `json:"tenant_id" validate:"required"`
	ContactID uuid.UUID `json:"contact_id" validate:"required"`
	Channel   string    `json:"channel" validate:"required,max=100"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID            uuid.UUID           `json:"id"`
	TenantID      uuid.UUID           `json:"tenant_id"`
	ContactID     uuid.UUID           `json:"contact_id"`
	EmployeeID    uuid.UUID           `json:"employee_id"`
	EmployeeName  string              `json:"employee_name"`
	Channel       string              `json:"channel"`
	Period        string              `json:"period"`
	Role          models.EmployeeRole `json:"role"`
	Status        string              `json:"status"`
	Created       bool                `json:"created"` // false when an active assignment already existed
	CreatedAt     string              `json:"created_at"`
	DeactivatedAt *string             `json:"deactivated_at,omitempty"`
}

// candidate is one eligible employee with the effective weight used for the
// draw.
type candidate struct {
	employee  models.Employee
	weight    float64
	effective float64
}

// Assign selects an employee for the contact's channel and records the
// assignment. Calling it again for the same (contact, channel) returns the
// existing assignment unchanged.
func (s *AssignmentService) Assign(req *AssignLeadRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.contactRepo.GetByID(req.ContactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact.TenantID != req.TenantID {
		return nil, apperrors.ErrContactNotFound
	}
	if contact.AutomationSuppressed() {
		return nil, apperrors.ErrAutomationSuppressed
	}

	// Idempotent fast path: an active assignment wins over a new draw.
	if existing, err := s.repo.GetActive(req.ContactID, req.Channel); err == nil {
		return s.toResponse(existing, false)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check active assignment: %w", err)
	}

	tenant, err := s.tenantRepo.GetByID(req.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	period := models.PeriodOf(s.now().In(tenantLocation(tenant)))

	picked, err := s.pickCandidate(req.TenantID, req.Channel, period)
	if err != nil {
		return nil, err
	}
	if picked == nil {
		metrics.NoneAvailableTotal.WithLabelValues(req.Channel).Inc()
		return nil, apperrors.ErrNoneAvailable
	}

	record := &models.AssignmentRecord{
		TenantID:         req.TenantID,
		EmployeeID:       picked.employee.ID,
		ContactID:        req.ContactID,
		Channel:          req.Channel,
		Period:           period,
		RoleAtAssignment: picked.employee.Role,
		WeightUsed:       picked.effective,
		Status:           models.AssignmentStatusActive,
		Notes:            req.Trigger,
	}

	created, existing, err := s.repo.CreateActive(record, picked.employee.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	if !created {
		// A concurrent request won the insert; its assignment stands.
		return s.toResponse(existing, false)
	}

	metrics.AssignmentsTotal.WithLabelValues(req.Channel, string(picked.employee.Role)).Inc()
	s.notifyAssignment(&picked.employee, contact, req.Channel)

	s.log.WithFields(map[string]interface{}{
		"tenant_id":   req.TenantID,
		"contact_id":  req.ContactID,
		"employee_id": picked.employee.ID,
		"channel":     req.Channel,
		"role":        picked.employee.Role,
	}).Info("Lead assigned")

	return &AssignmentResponse{
		ID:           record.ID,
		TenantID:     record.TenantID,
		ContactID:    record.ContactID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: picked.employee.Name,
		Channel:      record.Channel,
		Period:       record.Period,
		Role:         record.RoleAtAssignment,
		Status:       string(record.Status),
		Created:      true,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Release deactivates the active assignment for the contact's channel and
// removes the marker tag.
func (s *AssignmentService) Release(req *ReleaseLeadRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := s.repo.GetActive(req.ContactID, req.Channel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if record.TenantID != req.TenantID {
		return nil, apperrors.ErrAssignmentNotFound
	}

	employee, err := s.employeeRepo.GetByID(record.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	released, err := s.repo.Deactivate(req.ContactID, req.Channel, employee.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to release assignment: %w", err)
	}

	metrics.AssignmentsReleasedTotal.WithLabelValues(req.Channel).Inc()

	s.log.WithFields(map[string]interface{}{
		"tenant_id":   req.TenantID,
		"contact_id":  req.ContactID,
		"employee_id": record.EmployeeID,
		"channel":     req.Channel,
	}).Info("Lead released")

	resp := &AssignmentResponse{
		ID:           released.ID,
		TenantID:     released.TenantID,
		ContactID:    released.ContactID,
		EmployeeID:   released.EmployeeID,
		EmployeeName: employee.Name,
		Channel:      released.Channel,
		Period:       released.Period,
		Role:         released.RoleAtAssignment,
		Status:       string(released.Status),
		CreatedAt:    released.CreatedAt.Format(time.RFC3339),
	}
	if released.DeactivatedAt != nil {
		d := released.DeactivatedAt.Format(time.RFC3339)
		resp.DeactivatedAt = &d
	}
	return resp, nil
}

// GetActive returns the active assignment for a contact and channel
func (s *AssignmentService) GetActive(contactID uuid.UUID, channel string) (*AssignmentResponse, error) {
	record, err := s.repo.GetActive(contactID, channel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return s.toResponse(record, false)
}

// pickCandidate walks the role tiers in priority order and draws one employee
// from the first tier holding any eligible candidate. Returns nil when every
// tier is empty or exhausted.
func (s *AssignmentService) pickCandidate(tenantID uuid.UUID, channel, period string) (*candidate, error) {
	counts, err := s.counterRepo.GetCounts(tenantID, channel, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation counts: %w", err)
	}

	for _, role := range models.RoleTiers {
		rows, err := s.employeeRepo.GetChannelCandidates(tenantID, channel, role)
		if err != nil {
			return nil, fmt.Errorf("failed to get candidates for role %s: %w", role, err)
		}

		eligible := s.eligibleCandidates(rows, counts, channel)
		if picked := s.draw(eligible); picked != nil {
			return picked, nil
		}
	}
	return nil, nil
}

// eligibleCandidates filters a tier down to employees with remaining quota
// and positive weight, computing the count-damped effective weight for each.
func (s *AssignmentService) eligibleCandidates(rows []repository.ChannelCandidate, counts map[uuid.UUID]int, channel string) []candidate {
	var eligible []candidate
	for _, row := range rows {
		count := counts[row.Employee.ID]
		if row.MonthlyQuota != nil && count >= *row.MonthlyQuota {
			metrics.QuotaExhaustedTotal.WithLabelValues(channel).Inc()
			continue
		}
		if row.Weight <= 0 {
			continue
		}
		eligible = append(eligible, candidate{
			employee:  row.Employee,
			weight:    row.Weight,
			effective: row.Weight / float64(count+1),
		})
	}
	return eligible
}

// draw picks one candidate with probability proportional to effective weight
func (s *AssignmentService) draw(eligible []candidate) *candidate {
	var total float64
	for _, c := range eligible {
		total += c.effective
	}
	if total <= 0 {
		return nil
	}

	target := s.randFloat() * total
	var cumulative float64
	for i := range eligible {
		cumulative += eligible[i].effective
		if target < cumulative {
			return &eligible[i]
		}
	}
	return &eligible[len(eligible)-1]
}

// notifyAssignment publishes a fire-and-forget notification to the assigned
// employee. Failures are logged and never surface to the caller.
func (s *AssignmentService) notifyAssignment(employee *models.Employee, contact *models.Contact, channel string) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		name := contact.DisplayName
		if name == "" {
			name = contact.Phone
		}
		err := s.notifier.Publish(ctx, &Notification{
			TenantID: employee.TenantID,
			Event:    EventLeadAssigned,
			Address:  employee.PhoneNumber,
			Body:     fmt.Sprintf("New lead assigned to you: %s (%s) via %s", name, contact.Phone, channel),
		})
		if err != nil {
			s.log.WithError(err).Warn("Failed to publish assignment notification")
		}
	}()
}

// toResponse builds a response from a record, resolving the employee name
func (s *AssignmentService) toResponse(record *models.AssignmentRecord, created bool) (*AssignmentResponse, error) {
	employee, err := s.employeeRepo.GetByID(record.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := &AssignmentResponse{
		ID:           record.ID,
		TenantID:     record.TenantID,
		ContactID:    record.ContactID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: employee.Name,
		Channel:      record.Channel,
		Period:       record.Period,
		Role:         record.RoleAtAssignment,
		Status:       string(record.Status),
		Created:      created,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
	}
	if record.DeactivatedAt != nil {
		d := record.DeactivatedAt.Format(time.RFC3339)
		resp.DeactivatedAt = &d
	}
	return resp, nil
}

// tenantLocation resolves the tenant's timezone, falling back to UTC
func tenantLocation(tenant *models.Tenant) *time.Location {
	loc, err := time.LoadLocation(tenant.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
