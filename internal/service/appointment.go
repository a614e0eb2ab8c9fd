package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
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

// AppointmentService handles the appointment lifecycle: booking, reschedule,
// cancellation and lookup. The internal store is authoritative; the external
// calendar is a best-effort mirror that never blocks a booking once the
// internal transaction committed.
type AppointmentService struct {
	repo         repository.AppointmentRepositoryInterface
	configRepo   repository.CalendarConfigRepositoryInterface
	contactRepo  repository.ContactRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	calendar     ExternalCalendarInterface
	notifier     NotifierInterface
	validator    *validator.Validate
	log          *logger.Logger

	now func() time.Time
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	repo repository.AppointmentRepositoryInterface,
	configRepo repository.CalendarConfigRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	calendar ExternalCalendarInterface,
	notifier NotifierInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:         repo,
		configRepo:   configRepo,
		contactRepo:  contactRepo,
		employeeRepo: employeeRepo,
		calendar:     calendar,
		notifier:     notifier,
		validator:    validator,
		log:          log,
		now:          time.Now,
	}
}

// CreateAppointmentRequest represents the request to book an appointment
type CreateAppointmentRequest struct {
	TenantID        uuid.UUID `json:"tenant_id" validate:"required"`
	ContactID       uuid.UUID `json:"contact_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"max=2000"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=480"` // nil selects the configured duration heuristic
}

// AppointmentLookup identifies an appointment either directly by ID or by
// contact and date. A contact/date lookup that matches several appointments
// fails with AmbiguousMatchError; nothing is picked silently.
type AppointmentLookup struct {
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	ContactID     *uuid.UUID `json:"contact_id,omitempty"`
	Date          string     `json:"date,omitempty"` // 2006-01-02 in the calendar's timezone
}

// RescheduleAppointmentRequest represents the request to move an appointment
type RescheduleAppointmentRequest struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
	AppointmentLookup
	NewStartTime    time.Time `json:"new_start_time" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=480"`
}

// CancelAppointmentRequest represents the request to cancel an appointment
type CancelAppointmentRequest struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
	AppointmentLookup
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// AppointmentResponse represents the response for appointment operations
type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	TenantID        uuid.UUID  `json:"tenant_id"`
	ContactID       uuid.UUID  `json:"contact_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	EndsAt          time.Time  `json:"ends_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	PrimaryStaffID  *uuid.UUID `json:"primary_staff_id,omitempty"`
	SecondStaffID   *uuid.UUID `json:"second_staff_id,omitempty"`
	ExternalEventID string     `json:"external_event_id,omitempty"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// AppointmentListResponse represents a list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Create books a new appointment for a contact
func (s *AppointmentService) Create(ctx context.Context, req *CreateAppointmentRequest) (*AppointmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.getContact(req.TenantID, req.ContactID)
	if err != nil {
		return nil, err
	}

	config, err := s.resolveConfig(req.TenantID, contact.Tags)
	if err != nil {
		return nil, err
	}

	duration := durationFor(config, req.Title, req.Description, req.DurationMinutes)
	start, err := s.normalizeStart(config, req.StartTime, duration)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	unverified, err := s.checkExternalConflicts(ctx, config, start, end, "")
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		TenantID:        req.TenantID,
		ContactID:       req.ContactID,
		Title:           req.Title,
		Description:     req.Description,
		ScheduledAt:     start,
		DurationMinutes: duration,
		Status:          models.AppointmentStatusScheduled,
	}
	if unverified {
		appointment.Metadata, _ = json.Marshal(map[string]bool{"calendar_unverified": true})
	}

	params, err := s.bookingParams(req.TenantID, config, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Book(appointment, params); err != nil {
		if apperrors.IsConflict(err) {
			metrics.BookingConflictsTotal.WithLabelValues(string(apperrors.ConflictSourceInternal)).Inc()
		}
		return nil, err
	}

	s.mirrorCreate(ctx, config, appointment)
	s.tagContact(contact.ID, models.BookedTag, "")
	s.notifyStaff(appointment, EventAppointmentBooked,
		fmt.Sprintf("Appointment booked: %s on %s", appointment.Title, start.In(config.Location()).Format("Mon 2 Jan 15:04")))
	metrics.BookingsTotal.WithLabelValues("created").Inc()

	s.log.WithFields(map[string]interface{}{
		"tenant_id":      req.TenantID,
		"contact_id":     req.ContactID,
		"appointment_id": appointment.ID,
		"scheduled_at":   start,
	}).Info("Appointment booked")

	return s.toResponse(appointment), nil
}

// Reschedule moves an existing appointment to a new time
func (s *AppointmentService) Reschedule(ctx context.Context, req *RescheduleAppointmentRequest) (*AppointmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	config, appointment, err := s.lookupForUpdate(req.TenantID, &req.AppointmentLookup)
	if err != nil {
		return nil, err
	}

	// Same duration rule as Create: an explicit value wins, otherwise the
	// keyword heuristic runs against the current configuration.
	duration := durationFor(config, appointment.Title, appointment.Description, req.DurationMinutes)
	start, err := s.normalizeStart(config, req.NewStartTime, duration)
	if err != nil {
		return nil, err
	}

	// Moving onto the current slot is a no-op, not a conflict.
	if start.Equal(appointment.ScheduledAt) && duration == appointment.DurationMinutes {
		return s.toResponse(appointment), nil
	}

	end := start.Add(time.Duration(duration) * time.Minute)
	if _, err := s.checkExternalConflicts(ctx, config, start, end, appointment.ExternalEventID); err != nil {
		return nil, err
	}

	updated := &models.Appointment{
		TenantID:        appointment.TenantID,
		ContactID:       appointment.ContactID,
		Title:           appointment.Title,
		Description:     appointment.Description,
		ScheduledAt:     start,
		DurationMinutes: duration,
		Metadata:        rescheduleMetadata(appointment),
	}
	params, err := s.bookingParams(req.TenantID, config, &appointment.ID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Book(updated, params); err != nil {
		if apperrors.IsConflict(err) {
			metrics.BookingConflictsTotal.WithLabelValues(string(apperrors.ConflictSourceInternal)).Inc()
		}
		return nil, err
	}

	appointment.ScheduledAt = start
	appointment.DurationMinutes = duration
	appointment.PrimaryStaffID = updated.PrimaryStaffID
	appointment.SecondStaffID = updated.SecondStaffID
	appointment.Metadata = updated.Metadata

	s.mirrorUpdate(ctx, config, appointment)
	s.notifyStaff(appointment, EventAppointmentMoved,
		fmt.Sprintf("Appointment moved: %s now on %s", appointment.Title, start.In(config.Location()).Format("Mon 2 Jan 15:04")))
	metrics.BookingsTotal.WithLabelValues("rescheduled").Inc()

	s.log.WithFields(map[string]interface{}{
		"tenant_id":      req.TenantID,
		"appointment_id": appointment.ID,
		"scheduled_at":   start,
	}).Info("Appointment rescheduled")

	return s.toResponse(appointment), nil
}

// Cancel cancels an appointment, keeping the row for audit
func (s *AppointmentService) Cancel(ctx context.Context, req *CancelAppointmentRequest) (*AppointmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	config, appointment, err := s.lookupForUpdate(req.TenantID, &req.AppointmentLookup)
	if err != nil {
		return nil, err
	}

	metadata := appointment.Metadata
	if req.Reason != "" {
		merged := map[string]interface{}{}
		if len(metadata) > 0 {
			_ = json.Unmarshal(metadata, &merged)
		}
		merged["cancel_reason"] = req.Reason
		metadata, _ = json.Marshal(merged)
	}

	cancelled, err := s.repo.Cancel(appointment.ID, metadata)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.tagContact(appointment.ContactID, models.CancelledTag, models.BookedTag)
	s.mirrorDelete(ctx, config, cancelled)
	s.notifyStaff(cancelled, EventAppointmentCancelled,
		fmt.Sprintf("Appointment cancelled: %s (%s)", cancelled.Title, cancelled.ScheduledAt.In(config.Location()).Format("Mon 2 Jan 15:04")))
	metrics.BookingsTotal.WithLabelValues("cancelled").Inc()

	s.log.WithFields(map[string]interface{}{
		"tenant_id":      req.TenantID,
		"appointment_id": cancelled.ID,
	}).Info("Appointment cancelled")

	return s.toResponse(cancelled), nil
}

// SearchUpcoming returns the next scheduled appointments for a contact
func (s *AppointmentService) SearchUpcoming(tenantID, contactID uuid.UUID, limit int) (*AppointmentListResponse, error) {
	if _, err := s.getContact(tenantID, contactID); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	appointments, err := s.repo.GetUpcoming(contactID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming appointments: %w", err)
	}

	responses := make([]AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *s.toResponse(&appointments[i])
	}
	return &AppointmentListResponse{Appointments: responses, Total: len(responses)}, nil
}

// GetByID retrieves one appointment
func (s *AppointmentService) GetByID(tenantID, id uuid.UUID) (*AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment.TenantID != tenantID {
		return nil, apperrors.ErrAppointmentNotFound
	}
	return s.toResponse(appointment), nil
}

// lookupForUpdate resolves the lookup to exactly one scheduled appointment
// and the calendar configuration governing it.
func (s *AppointmentService) lookupForUpdate(tenantID uuid.UUID, lookup *AppointmentLookup) (*models.CalendarConfiguration, *models.Appointment, error) {
	appointment, err := s.findOne(tenantID, lookup)
	if err != nil {
		return nil, nil, err
	}
	if appointment.Status != models.AppointmentStatusScheduled {
		return nil, nil, apperrors.ErrAppointmentNotActive
	}

	contact, err := s.getContact(tenantID, appointment.ContactID)
	if err != nil {
		return nil, nil, err
	}
	config, err := s.resolveConfig(tenantID, contact.Tags)
	if err != nil {
		return nil, nil, err
	}
	return config, appointment, nil
}

// findOne resolves an AppointmentLookup to a single appointment
func (s *AppointmentService) findOne(tenantID uuid.UUID, lookup *AppointmentLookup) (*models.Appointment, error) {
	if lookup.AppointmentID != nil {
		appointment, err := s.repo.GetByID(*lookup.AppointmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAppointmentNotFound
			}
			return nil, fmt.Errorf("failed to get appointment: %w", err)
		}
		if appointment.TenantID != tenantID {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return appointment, nil
	}

	if lookup.ContactID == nil || lookup.Date == "" {
		return nil, apperrors.NewValidationError("appointment_id",
			"either appointment_id or contact_id with date is required")
	}

	contact, err := s.getContact(tenantID, *lookup.ContactID)
	if err != nil {
		return nil, err
	}
	config, err := s.resolveConfig(tenantID, contact.Tags)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", lookup.Date, config.Location())
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	matches, err := s.repo.FindByContactOnDate(tenantID, *lookup.ContactID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, apperrors.ErrAppointmentNotFound
	case 1:
		return &matches[0], nil
	default:
		candidates := make([]apperrors.CandidateAppointment, len(matches))
		for i, m := range matches {
			candidates[i] = apperrors.CandidateAppointment{
				ID:          m.ID.String(),
				Title:       m.Title,
				ScheduledAt: m.ScheduledAt,
			}
		}
		return nil, &apperrors.AmbiguousMatchError{Candidates: candidates}
	}
}

// normalizeStart rounds the requested start up to the slot grid and verifies
// it lies in the future inside operating hours.
func (s *AppointmentService) normalizeStart(config *models.CalendarConfiguration, requested time.Time, durationMinutes int) (time.Time, error) {
	start := roundUpToGrid(config, requested)
	if !start.After(s.now()) {
		return time.Time{}, apperrors.ErrStartTimeInPast
	}
	if start.Before(config.OpensAt(start)) {
		start = config.OpensAt(start)
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	if end.After(config.ClosesAt(start)) {
		return time.Time{}, apperrors.ErrInvalidTimeRange
	}
	return start, nil
}

// checkExternalConflicts queries the external calendar for the interval. An
// overlapping event fails the booking; a provider failure degrades and the
// appointment is marked unverified instead.
func (s *AppointmentService) checkExternalConflicts(ctx context.Context, config *models.CalendarConfiguration, start, end time.Time, ownEventID string) (unverified bool, err error) {
	if config.ExternalCalendar == "" || s.calendar == nil || !s.calendar.Enabled() {
		return false, nil
	}

	events, err := s.calendar.EventsBetween(ctx, config.ExternalCalendar, start, end)
	if err != nil {
		metrics.CalendarFailuresTotal.WithLabelValues("list").Inc()
		s.log.WithError(err).Warn("External calendar check failed, booking without verification")
		return true, nil
	}

	var conflicts []apperrors.ConflictingInterval
	for _, ev := range events {
		if ev.ID != "" && ev.ID == ownEventID {
			continue
		}
		if ev.Start.Before(end) && ev.End.After(start) {
			conflicts = append(conflicts, apperrors.ConflictingInterval{
				Source: apperrors.ConflictSourceCalendar,
				Title:  ev.Title,
				Start:  ev.Start,
				End:    ev.End,
			})
		}
	}
	if len(conflicts) > 0 {
		metrics.BookingConflictsTotal.WithLabelValues(string(apperrors.ConflictSourceCalendar)).Inc()
		return false, apperrors.NewConflictError(conflicts)
	}
	return false, nil
}

// bookingParams builds the repository booking parameters for the tenant
func (s *AppointmentService) bookingParams(tenantID uuid.UUID, config *models.CalendarConfiguration, excludeID *uuid.UUID) (repository.BookingParams, error) {
	params := repository.BookingParams{
		StaffModel:  config.StaffModel,
		RequirePair: config.RequireStaffPair,
		ExcludeID:   excludeID,
	}
	if config.StaffModel {
		employees, err := s.employeeRepo.GetActiveByTenant(tenantID)
		if err != nil {
			return params, fmt.Errorf("failed to get staff roster: %w", err)
		}
		for _, e := range employees {
			params.Roster = append(params.Roster, e.ID)
		}
	}
	return params, nil
}

// mirrorCreate pushes the booked appointment onto the external calendar.
// Best effort: the internal booking already committed.
func (s *AppointmentService) mirrorCreate(ctx context.Context, config *models.CalendarConfiguration, appointment *models.Appointment) {
	if config.ExternalCalendar == "" || s.calendar == nil || !s.calendar.Enabled() {
		return
	}
	eventID, err := s.calendar.CreateEvent(ctx, config.ExternalCalendar, &CalendarEvent{
		Title:       appointment.Title,
		Description: appointment.Description,
		Start:       appointment.ScheduledAt,
		End:         appointment.EndsAt(),
	})
	if err != nil {
		metrics.CalendarFailuresTotal.WithLabelValues("create").Inc()
		s.log.WithError(err).WithField("appointment_id", appointment.ID).
			Warn("Failed to mirror appointment to external calendar")
		return
	}
	appointment.ExternalEventID = eventID
	if err := s.repo.Update(appointment); err != nil {
		s.log.WithError(err).WithField("appointment_id", appointment.ID).
			Warn("Failed to store external event id")
	}
}

// mirrorUpdate moves the mirrored event, creating it if the original mirror
// never succeeded.
func (s *AppointmentService) mirrorUpdate(ctx context.Context, config *models.CalendarConfiguration, appointment *models.Appointment) {
	if config.ExternalCalendar == "" || s.calendar == nil || !s.calendar.Enabled() {
		return
	}
	if appointment.ExternalEventID == "" {
		s.mirrorCreate(ctx, config, appointment)
		return
	}
	err := s.calendar.UpdateEvent(ctx, config.ExternalCalendar, appointment.ExternalEventID, &CalendarEvent{
		Title:       appointment.Title,
		Description: appointment.Description,
		Start:       appointment.ScheduledAt,
		End:         appointment.EndsAt(),
	})
	if err != nil {
		metrics.CalendarFailuresTotal.WithLabelValues("update").Inc()
		s.log.WithError(err).WithField("appointment_id", appointment.ID).
			Warn("Failed to move mirrored calendar event")
	}
}

// mirrorDelete removes the mirrored event after cancellation
func (s *AppointmentService) mirrorDelete(ctx context.Context, config *models.CalendarConfiguration, appointment *models.Appointment) {
	if config.ExternalCalendar == "" || s.calendar == nil || !s.calendar.Enabled() || appointment.ExternalEventID == "" {
		return
	}
	if err := s.calendar.DeleteEvent(ctx, config.ExternalCalendar, appointment.ExternalEventID); err != nil {
		metrics.CalendarFailuresTotal.WithLabelValues("delete").Inc()
		s.log.WithError(err).WithField("appointment_id", appointment.ID).
			Warn("Failed to delete mirrored calendar event")
	}
}

// tagContact applies the booking tag transition on the contact, best effort
func (s *AppointmentService) tagContact(contactID uuid.UUID, add, remove string) {
	if remove != "" {
		if _, _, err := s.contactRepo.RemoveTag(contactID, remove); err != nil {
			s.log.WithError(err).WithField("contact_id", contactID).Warn("Failed to remove contact tag")
		}
	}
	if add != "" {
		if _, err := s.contactRepo.AddTag(contactID, add); err != nil {
			s.log.WithError(err).WithField("contact_id", contactID).Warn("Failed to add contact tag")
		}
	}
}

// notifyStaff publishes a fire-and-forget notification to the assigned staff
func (s *AppointmentService) notifyStaff(appointment *models.Appointment, event, body string) {
	if s.notifier == nil {
		return
	}
	staff := appointment.StaffIDs()
	if len(staff) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, id := range staff {
			employee, err := s.employeeRepo.GetByID(id)
			if err != nil {
				s.log.WithError(err).WithField("employee_id", id).Warn("Failed to resolve staff for notification")
				continue
			}
			err = s.notifier.Publish(ctx, &Notification{
				TenantID: appointment.TenantID,
				Event:    event,
				Address:  employee.PhoneNumber,
				Body:     body,
			})
			if err != nil {
				s.log.WithError(err).Warn("Failed to publish appointment notification")
			}
		}
	}()
}

// getContact loads a contact and verifies tenant ownership
func (s *AppointmentService) getContact(tenantID, contactID uuid.UUID) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact.TenantID != tenantID {
		return nil, apperrors.ErrContactNotFound
	}
	return contact, nil
}

// resolveConfig picks the calendar configuration for a contact's tags
func (s *AppointmentService) resolveConfig(tenantID uuid.UUID, tags []string) (*models.CalendarConfiguration, error) {
	config, err := s.configRepo.ResolveForTags(tenantID, tags)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCalendarConfigured
		}
		return nil, fmt.Errorf("failed to resolve calendar configuration: %w", err)
	}
	return config, nil
}

// toResponse converts an appointment model to a response
func (s *AppointmentService) toResponse(appointment *models.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appointment.ID,
		TenantID:        appointment.TenantID,
		ContactID:       appointment.ContactID,
		Title:           appointment.Title,
		Description:     appointment.Description,
		ScheduledAt:     appointment.ScheduledAt,
		EndsAt:          appointment.EndsAt(),
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		PrimaryStaffID:  appointment.PrimaryStaffID,
		SecondStaffID:   appointment.SecondStaffID,
		ExternalEventID: appointment.ExternalEventID,
		CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appointment.UpdatedAt.Format(time.RFC3339),
	}
}

// durationFor picks the appointment duration: an explicit request wins,
// otherwise a keyword match in title or description selects the extended
// duration.
func durationFor(config *models.CalendarConfiguration, title, description string, requested *int) int {
	if requested != nil {
		return *requested
	}
	haystack := strings.ToLower(title + " " + description)
	for _, kw := range config.ExtendedKeywords {
		if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
			return config.ExtendedMinutes
		}
	}
	return config.DefaultMinutes
}

// rescheduleMetadata merges the pre-move start time into the appointment
// metadata. The first recorded original_time survives later reschedules.
func rescheduleMetadata(appointment *models.Appointment) []byte {
	meta := map[string]interface{}{}
	if len(appointment.Metadata) > 0 {
		_ = json.Unmarshal(appointment.Metadata, &meta)
	}
	if _, ok := meta["original_time"]; !ok {
		meta["original_time"] = appointment.ScheduledAt.Format(time.RFC3339)
	}
	merged, _ := json.Marshal(meta)
	return merged
}

// roundUpToGrid rounds an instant up to the next slot boundary, anchored at
// the day's opening time.
func roundUpToGrid(config *models.CalendarConfiguration, t time.Time) time.Time {
	open := config.OpensAt(t)
	if !t.After(open) {
		return open
	}
	step := time.Duration(config.SlotMinutes) * time.Minute
	offset := t.Sub(open)
	rounded := (offset + step - 1) / step * step
	return open.Add(rounded)
}
