package service

import (
	"context"
	"time"

	"whatsapp-crm-backend/internal/database/models"
	"whatsapp-crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hand-rolled fakes for the repository interfaces. Unset functions fall back
// to "not found" or empty results so each test only wires what it exercises.

type fakeAssignmentRepo struct {
	getActive          func(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error)
	getActiveByContact func(contactID uuid.UUID) ([]models.AssignmentRecord, error)
	createActive       func(record *models.AssignmentRecord, markerTag string) (bool, *models.AssignmentRecord, error)
	deactivate         func(contactID uuid.UUID, channel, markerTag string) (*models.AssignmentRecord, error)

	createActiveCalls int
	lastMarkerTag     string
}

func (f *fakeAssignmentRepo) GetByID(id uuid.UUID) (*models.AssignmentRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) GetActive(contactID uuid.UUID, channel string) (*models.AssignmentRecord, error) {
	if f.getActive != nil {
		return f.getActive(contactID, channel)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) GetActiveByContact(contactID uuid.UUID) ([]models.AssignmentRecord, error) {
	if f.getActiveByContact != nil {
		return f.getActiveByContact(contactID)
	}
	return nil, nil
}

func (f *fakeAssignmentRepo) GetByEmployeeAndPeriod(employeeID uuid.UUID, period string, limit, offset int) ([]models.AssignmentRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeAssignmentRepo) CreateActive(record *models.AssignmentRecord, markerTag string) (bool, *models.AssignmentRecord, error) {
	f.createActiveCalls++
	f.lastMarkerTag = markerTag
	if f.createActive != nil {
		return f.createActive(record, markerTag)
	}
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	return true, nil, nil
}

func (f *fakeAssignmentRepo) Deactivate(contactID uuid.UUID, channel, markerTag string) (*models.AssignmentRecord, error) {
	if f.deactivate != nil {
		return f.deactivate(contactID, channel, markerTag)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEmployeeRepo struct {
	getByID           func(id uuid.UUID) (*models.Employee, error)
	candidates        func(channel string, role models.EmployeeRole) ([]repository.ChannelCandidate, error)
	getActiveByTenant func(tenantID uuid.UUID) ([]models.Employee, error)
}

func (f *fakeEmployeeRepo) Create(employee *models.Employee) error { return nil }

func (f *fakeEmployeeRepo) GetByID(id uuid.UUID) (*models.Employee, error) {
	if f.getByID != nil {
		return f.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) GetByName(tenantID uuid.UUID, name string) (*models.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) GetActiveByTenant(tenantID uuid.UUID) ([]models.Employee, error) {
	if f.getActiveByTenant != nil {
		return f.getActiveByTenant(tenantID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetChannelCandidates(tenantID uuid.UUID, channel string, role models.EmployeeRole) ([]repository.ChannelCandidate, error) {
	if f.candidates != nil {
		return f.candidates(channel, role)
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(employee *models.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpsertChannelSetting(setting *models.EmployeeChannelSetting) error {
	return nil
}

func (f *fakeEmployeeRepo) GetChannelSettings(employeeID uuid.UUID) ([]models.EmployeeChannelSetting, error) {
	return nil, nil
}

type fakeContactRepo struct {
	getByID func(id uuid.UUID) (*models.Contact, error)

	addedTags   []string
	removedTags []string
}

func (f *fakeContactRepo) Create(contact *models.Contact) error { return nil }

func (f *fakeContactRepo) GetByID(id uuid.UUID) (*models.Contact, error) {
	if f.getByID != nil {
		return f.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContactRepo) GetByPhone(tenantID uuid.UUID, phone string) (*models.Contact, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContactRepo) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Contact, int64, error) {
	return nil, 0, nil
}

func (f *fakeContactRepo) Update(contact *models.Contact) error { return nil }

func (f *fakeContactRepo) AddTag(id uuid.UUID, tag string) (*models.Contact, error) {
	f.addedTags = append(f.addedTags, tag)
	return &models.Contact{}, nil
}

func (f *fakeContactRepo) RemoveTag(id uuid.UUID, tag string) (*models.Contact, bool, error) {
	f.removedTags = append(f.removedTags, tag)
	return &models.Contact{}, true, nil
}

type fakeCounterRepo struct {
	counts    func(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error)
	reconcile func() (int64, error)

	reconcileCalls int
}

func (f *fakeCounterRepo) GetCount(employeeID uuid.UUID, channel, period string) (int, error) {
	return 0, nil
}

func (f *fakeCounterRepo) GetCounts(tenantID uuid.UUID, channel, period string) (map[uuid.UUID]int, error) {
	if f.counts != nil {
		return f.counts(tenantID, channel, period)
	}
	return map[uuid.UUID]int{}, nil
}

func (f *fakeCounterRepo) GetByTenantAndPeriod(tenantID uuid.UUID, period string) ([]models.MonthlyAllocationCounter, error) {
	return nil, nil
}

func (f *fakeCounterRepo) Reconcile() (int64, error) {
	f.reconcileCalls++
	if f.reconcile != nil {
		return f.reconcile()
	}
	return 0, nil
}

type fakeTenantRepo struct {
	tenant *models.Tenant
}

func (f *fakeTenantRepo) Create(tenant *models.Tenant) error { return nil }

func (f *fakeTenantRepo) GetByID(id uuid.UUID) (*models.Tenant, error) {
	if f.tenant != nil {
		return f.tenant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) GetByName(name string) (*models.Tenant, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	return nil, 0, nil
}

func (f *fakeTenantRepo) Update(tenant *models.Tenant) error { return nil }

type fakeAppointmentRepo struct {
	getByID       func(id uuid.UUID) (*models.Appointment, error)
	overlapping   func(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error)
	byContactDate func(tenantID, contactID uuid.UUID, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	upcoming      func(contactID uuid.UUID, after time.Time, limit int) ([]models.Appointment, error)
	book          func(appointment *models.Appointment, params repository.BookingParams) error
	cancel        func(id uuid.UUID, metadata []byte) (*models.Appointment, error)

	bookCalls  int
	lastBooked *models.Appointment
	lastParams repository.BookingParams
}

func (f *fakeAppointmentRepo) GetByID(id uuid.UUID) (*models.Appointment, error) {
	if f.getByID != nil {
		return f.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppointmentRepo) GetOverlapping(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error) {
	if f.overlapping != nil {
		return f.overlapping(tenantID, start, end, excludeID)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByContactOnDate(tenantID, contactID uuid.UUID, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.byContactDate != nil {
		return f.byContactDate(tenantID, contactID, dayStart, dayEnd)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetUpcoming(contactID uuid.UUID, after time.Time, limit int) ([]models.Appointment, error) {
	if f.upcoming != nil {
		return f.upcoming(contactID, after, limit)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Book(appointment *models.Appointment, params repository.BookingParams) error {
	f.bookCalls++
	f.lastBooked = appointment
	f.lastParams = params
	if f.book != nil {
		return f.book(appointment, params)
	}
	appointment.ID = uuid.New()
	return nil
}

func (f *fakeAppointmentRepo) Cancel(id uuid.UUID, metadata []byte) (*models.Appointment, error) {
	if f.cancel != nil {
		return f.cancel(id, metadata)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppointmentRepo) Update(appointment *models.Appointment) error { return nil }

type fakeConfigRepo struct {
	config *models.CalendarConfiguration
	err    error
}

func (f *fakeConfigRepo) GetByTenant(tenantID uuid.UUID) ([]models.CalendarConfiguration, error) {
	return nil, nil
}

func (f *fakeConfigRepo) GetDefault(tenantID uuid.UUID) (*models.CalendarConfiguration, error) {
	return f.ResolveForTags(tenantID, nil)
}

func (f *fakeConfigRepo) ResolveForTags(tenantID uuid.UUID, tags []string) (*models.CalendarConfiguration, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.config != nil {
		return f.config, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeConfigRepo) Upsert(config *models.CalendarConfiguration) error { return nil }

// fakeCalendar implements ExternalCalendarInterface with injectable behavior.
type fakeCalendar struct {
	enabled bool
	events  []CalendarEvent
	listErr error

	createdEvents []CalendarEvent
	updatedIDs    []string
	deletedIDs    []string
}

func (f *fakeCalendar) Enabled() bool { return f.enabled }

func (f *fakeCalendar) EventsBetween(ctx context.Context, calendarID string, start, end time.Time) ([]CalendarEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, calendarID string, event *CalendarEvent) (string, error) {
	f.createdEvents = append(f.createdEvents, *event)
	return "ext-" + uuid.NewString()[:8], nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, calendarID, eventID string, event *CalendarEvent) error {
	f.updatedIDs = append(f.updatedIDs, eventID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deletedIDs = append(f.deletedIDs, eventID)
	return nil
}
