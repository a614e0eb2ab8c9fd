package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this contact and channel"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error, rejected before any write
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictSource identifies which authority reported a busy interval.
type ConflictSource string

const (
	ConflictSourceInternal ConflictSource = "internal"
	ConflictSourceCalendar ConflictSource = "calendar"
)

// ConflictingInterval describes one busy interval that blocked a booking.
type ConflictingInterval struct {
	Source ConflictSource `json:"source"`
	Title  string         `json:"title,omitempty"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
}

// ConflictDetectedError is returned when a requested interval overlaps
// existing appointments or external calendar events. It carries the full
// conflicting set from both sources so the caller can render alternatives.
// No state is mutated when this error is returned.
type ConflictDetectedError struct {
	Conflicts []ConflictingInterval
}

func (e *ConflictDetectedError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s-%s", c.Source, c.Start.Format("15:04"), c.End.Format("15:04")))
	}
	return fmt.Sprintf("schedule conflict detected: %s", strings.Join(parts, ", "))
}

// CandidateAppointment summarizes one lookup candidate.
type CandidateAppointment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// AmbiguousMatchError is returned when an appointment lookup matched more
// than one candidate and the caller must disambiguate; nothing is auto-picked.
type AmbiguousMatchError struct {
	Candidates []CandidateAppointment
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match: %d appointments found, disambiguation required", len(e.Candidates))
}

// ExternalServiceError represents a degraded or unreachable external service
type ExternalServiceError struct {
	Service string
	Message string
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s unavailable: %s", e.Service, e.Message)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound         = &NotFoundError{Entity: "tenant"}
	ErrEmployeeNotFound       = &NotFoundError{Entity: "employee"}
	ErrContactNotFound        = &NotFoundError{Entity: "contact"}
	ErrAssignmentNotFound     = &NotFoundError{Entity: "assignment"}
	ErrAppointmentNotFound    = &NotFoundError{Entity: "appointment"}
	ErrCalendarConfigNotFound = &NotFoundError{Entity: "calendar configuration"}
)

// Already Exists Errors
var (
	ErrTenantExists           = &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
	ErrEmployeeExists         = &AlreadyExistsError{Entity: "employee", Context: "with this name in the tenant"}
	ErrContactExists          = &AlreadyExistsError{Entity: "contact", Context: "with this phone in the tenant"}
	ErrActiveAssignmentExists = &AlreadyExistsError{Entity: "active assignment", Context: "for this contact and channel"}
)

// Allocation Errors
var (
	ErrNoneAvailable     = errors.New("no eligible employee available at any tier")
	ErrInsufficientStaff = errors.New("not enough free staff for the requested slot")
	ErrQuotaExhausted    = errors.New("employee monthly quota exhausted")
)

// Scheduling Errors
var (
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrStartTimeInPast      = errors.New("requested start time is in the past")
	ErrNoCalendarConfigured = errors.New("no calendar configured for tenant")
	ErrAutomationSuppressed = errors.New("automation suppressed for contact")
	ErrAppointmentNotActive = errors.New("appointment is not in scheduled status")
	ErrCalendarUnverified   = errors.New("external calendar could not be verified")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictDetectedError
func IsConflict(err error) bool {
	var conflictErr *ConflictDetectedError
	return errors.As(err, &conflictErr)
}

// IsAmbiguous checks if an error is an AmbiguousMatchError
func IsAmbiguous(err error) bool {
	var ambiguousErr *AmbiguousMatchError
	return errors.As(err, &ambiguousErr)
}

// IsExternalService checks if an error is an ExternalServiceError
func IsExternalService(err error) bool {
	var svcErr *ExternalServiceError
	return errors.As(err, &svcErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a ConflictDetectedError from the conflicting set
func NewConflictError(conflicts []ConflictingInterval) error {
	return &ConflictDetectedError{Conflicts: conflicts}
}

// NewExternalServiceError creates a new ExternalServiceError
func NewExternalServiceError(service, message string) error {
	return &ExternalServiceError{Service: service, Message: message}
}
