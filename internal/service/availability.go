package service

import (
	"context"
	"errors"
	"fmt"
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

// AvailabilityService computes free booking slots by merging the internal
// appointment store with external calendar busy intervals. When the external
// provider is unreachable the result degrades to internal data only and is
// flagged as unverified rather than failing the query.
type AvailabilityService struct {
	appointmentRepo repository.AppointmentRepositoryInterface
	configRepo      repository.CalendarConfigRepositoryInterface
	contactRepo     repository.ContactRepositoryInterface
	employeeRepo    repository.EmployeeRepositoryInterface
	calendar        ExternalCalendarInterface
	validator       *validator.Validate
	log             *logger.Logger

	now func() time.Time
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	appointmentRepo repository.AppointmentRepositoryInterface,
	configRepo repository.CalendarConfigRepositoryInterface,
	contactRepo repository.ContactRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	calendar ExternalCalendarInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		contactRepo:     contactRepo,
		employeeRepo:    employeeRepo,
		calendar:        calendar,
		validator:       validator,
		log:             log,
		now:             time.Now,
	}
}

// FreeSlotsRequest represents the request for free slot calculation
type FreeSlotsRequest struct {
	TenantID        uuid.UUID  `json:"tenant_id" validate:"required"`
	ContactID       *uuid.UUID `json:"contact_id,omitempty"` // routes tagged contacts to their calendar
	Date            string     `json:"date,omitempty"` // single-day query (2006-01-02); overrides Days
	From            string     `json:"from,omitempty"` // explicit range start (2006-01-02), paired with To
	To              string     `json:"to,omitempty"`   // explicit range end, inclusive
	Days            int        `json:"days" validate:"omitempty,min=1,max=90"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
}

// DayAvailability lists the free slot start times of one day
type DayAvailability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FreeSlotsResponse represents the computed availability window
type FreeSlotsResponse struct {
	TenantID        uuid.UUID         `json:"tenant_id"`
	CalendarKey     string            `json:"calendar_key"`
	Timezone        string            `json:"timezone"`
	SlotMinutes     int               `json:"slot_minutes"`
	DurationMinutes int               `json:"duration_minutes"`
	Verified        bool              `json:"verified"` // false when the external calendar could not be consulted
	Days            []DayAvailability `json:"days"`
}

// busyInterval is one occupied interval, with staff attribution when it came
// from an internal staffed appointment.
type busyInterval struct {
	start time.Time
	end   time.Time
	staff []uuid.UUID
}

// FreeSlots computes the free slots over the tenant's look-ahead window
func (s *AvailabilityService) FreeSlots(ctx context.Context, req *FreeSlotsRequest) (*FreeSlotsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	config, err := s.resolveConfig(req.TenantID, req.ContactID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = config.DefaultMinutes
	}

	loc := config.Location()
	now := s.now().In(loc)

	firstDay, days, err := s.resolveWindow(req, config, now, loc)
	if err != nil {
		return nil, err
	}

	windowStart := config.OpensAt(firstDay)
	windowEnd := config.ClosesAt(firstDay.AddDate(0, 0, days-1))

	busy, verified, err := s.busyIntervals(ctx, req.TenantID, config, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	var roster []uuid.UUID
	if config.StaffModel {
		employees, err := s.employeeRepo.GetActiveByTenant(req.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get staff roster: %w", err)
		}
		for _, e := range employees {
			roster = append(roster, e.ID)
		}
	}

	resp := &FreeSlotsResponse{
		TenantID:        req.TenantID,
		CalendarKey:     config.Key,
		Timezone:        config.Timezone,
		SlotMinutes:     config.SlotMinutes,
		DurationMinutes: duration,
		Verified:        verified,
	}

	for d := 0; d < days; d++ {
		day := firstDay.AddDate(0, 0, d)
		resp.Days = append(resp.Days, DayAvailability{
			Date:  day.Format("2006-01-02"),
			Slots: s.daySlots(config, day, duration, now, busy, roster),
		})
	}

	state := "verified"
	if !verified {
		state = "degraded"
	}
	metrics.FreeSlotRequestsTotal.WithLabelValues(state).Inc()

	return resp, nil
}

// maxRangeDays bounds explicit from/to queries
const maxRangeDays = 90

// resolveWindow turns the request's date selectors into a first day and a day
// count. Precedence: single date, then an explicit from/to range, then the
// configured look-ahead anchored at now.
func (s *AvailabilityService) resolveWindow(req *FreeSlotsRequest, config *models.CalendarConfiguration, now time.Time, loc *time.Location) (time.Time, int, error) {
	if req.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", req.Date, loc)
		if err != nil {
			return time.Time{}, 0, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
		}
		return day, 1, nil
	}

	if req.From != "" || req.To != "" {
		if req.From == "" || req.To == "" {
			return time.Time{}, 0, apperrors.NewValidationError("from", "from and to must be provided together")
		}
		from, err := time.ParseInLocation("2006-01-02", req.From, loc)
		if err != nil {
			return time.Time{}, 0, apperrors.NewValidationError("from", "must be in YYYY-MM-DD format")
		}
		to, err := time.ParseInLocation("2006-01-02", req.To, loc)
		if err != nil {
			return time.Time{}, 0, apperrors.NewValidationError("to", "must be in YYYY-MM-DD format")
		}
		if to.Before(from) {
			return time.Time{}, 0, apperrors.NewValidationError("to", "must not be before from")
		}
		days := 0
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			days++
			if days > maxRangeDays {
				return time.Time{}, 0, apperrors.NewValidationError("to", fmt.Sprintf("range cannot exceed %d days", maxRangeDays))
			}
		}
		return from, days, nil
	}

	days := req.Days
	if days <= 0 || days > config.LookaheadDays {
		days = config.LookaheadDays
	}
	return now, days, nil
}

// resolveConfig picks the calendar configuration, routing by contact tags
// when a contact is given.
func (s *AvailabilityService) resolveConfig(tenantID uuid.UUID, contactID *uuid.UUID) (*models.CalendarConfiguration, error) {
	var tags []string
	if contactID != nil {
		contact, err := s.contactRepo.GetByID(*contactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to get contact: %w", err)
		}
		if contact.TenantID != tenantID {
			return nil, apperrors.ErrContactNotFound
		}
		tags = contact.Tags
	}

	config, err := s.configRepo.ResolveForTags(tenantID, tags)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCalendarConfigured
		}
		return nil, fmt.Errorf("failed to resolve calendar configuration: %w", err)
	}
	return config, nil
}

// busyIntervals merges internal appointments with external calendar events
// for the window. External failure degrades to internal-only with
// verified=false.
func (s *AvailabilityService) busyIntervals(ctx context.Context, tenantID uuid.UUID, config *models.CalendarConfiguration, start, end time.Time) ([]busyInterval, bool, error) {
	appointments, err := s.appointmentRepo.GetOverlapping(tenantID, start, end, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get appointments: %w", err)
	}

	busy := make([]busyInterval, 0, len(appointments))
	for _, appt := range appointments {
		busy = append(busy, busyInterval{
			start: appt.ScheduledAt,
			end:   appt.EndsAt(),
			staff: appt.StaffIDs(),
		})
	}

	verified := true
	if config.ExternalCalendar != "" && s.calendar != nil && s.calendar.Enabled() {
		events, err := s.calendar.EventsBetween(ctx, config.ExternalCalendar, start, end)
		if err != nil {
			verified = false
			metrics.CalendarFailuresTotal.WithLabelValues("list").Inc()
			s.log.WithError(err).WithField("tenant_id", tenantID).
				Warn("External calendar unavailable, computing availability from internal data only")
		} else {
			for _, ev := range events {
				busy = append(busy, busyInterval{start: ev.Start, end: ev.End})
			}
		}
	}

	return busy, verified, nil
}

// daySlots enumerates the free slot starts of one day on the configured grid
func (s *AvailabilityService) daySlots(config *models.CalendarConfiguration, day time.Time, durationMinutes int, now time.Time, busy []busyInterval, roster []uuid.UUID) []string {
	open := config.OpensAt(day)
	close := config.ClosesAt(day)
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(config.SlotMinutes) * time.Minute

	slots := []string{}
	for start := open; !start.Add(duration).After(close); start = start.Add(step) {
		if start.Before(now) {
			continue
		}
		if s.slotFree(config, start, start.Add(duration), busy, roster) {
			slots = append(slots, start.Format("15:04"))
		}
	}
	return slots
}

// slotFree reports whether the interval can be booked. Without a staff model
// any overlap blocks the slot; with one, the slot stays free while enough
// roster members have no overlapping staffed interval. Unstaffed intervals
// (external events) always block.
func (s *AvailabilityService) slotFree(config *models.CalendarConfiguration, start, end time.Time, busy []busyInterval, roster []uuid.UUID) bool {
	if !config.StaffModel {
		for _, b := range busy {
			if b.start.Before(end) && b.end.After(start) {
				return false
			}
		}
		return true
	}

	occupied := make(map[uuid.UUID]bool)
	for _, b := range busy {
		if !b.start.Before(end) || !b.end.After(start) {
			continue
		}
		if len(b.staff) == 0 {
			return false
		}
		for _, id := range b.staff {
			occupied[id] = true
		}
	}

	free := 0
	for _, id := range roster {
		if !occupied[id] {
			free++
		}
	}

	required := 1
	if config.RequireStaffPair {
		required = 2
	}
	return free >= required
}
