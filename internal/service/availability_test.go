package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"whatsapp-crm-backend/internal/database/models"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 08:00 on a Tuesday, one hour before opening
var availTestNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

type availabilityFixture struct {
	service    *AvailabilityService
	apptRepo   *fakeAppointmentRepo
	configRepo *fakeConfigRepo
	contacts   *fakeContactRepo
	employees  *fakeEmployeeRepo
	calendar   *fakeCalendar

	tenantID uuid.UUID
}

func newAvailabilityFixture() *availabilityFixture {
	f := &availabilityFixture{
		apptRepo:  &fakeAppointmentRepo{},
		contacts:  &fakeContactRepo{},
		employees: &fakeEmployeeRepo{},
		calendar:  &fakeCalendar{},
		tenantID:  uuid.New(),
	}
	f.configRepo = &fakeConfigRepo{config: &models.CalendarConfiguration{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		TenantID:       f.tenantID,
		Key:            "default",
		SlotMinutes:    30,
		OpenHour:       9,
		CloseHour:      12,
		LookaheadDays:  3,
		Timezone:       "UTC",
		DefaultMinutes: 60,
	}}
	f.service = NewAvailabilityService(f.apptRepo, f.configRepo, f.contacts, f.employees, f.calendar, validator.New(), logger.New())
	f.service.now = func() time.Time { return availTestNow }
	return f
}

func TestFreeSlotsEnumeratesGrid(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, "default", resp.CalendarKey)
	assert.Equal(t, 30, resp.SlotMinutes)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-03-10", resp.Days[0].Date)
	// the 11:30 start would end past closing and is excluded
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)
	assert.Equal(t, resp.Days[0].Slots, resp.Days[1].Slots)
}

func TestFreeSlotsSkipsElapsedStarts(t *testing.T) {
	f := newAvailabilityFixture()
	f.service.now = func() time.Time { return time.Date(2026, 3, 10, 10, 5, 0, 0, time.UTC) }

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsKeepsSlotStartingNow(t *testing.T) {
	f := newAvailabilityFixture()
	f.service.now = func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) }

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	// only starts strictly before now are dropped
	assert.Equal(t, []string{"09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsBlocksInternalOverlaps(t *testing.T) {
	f := newAvailabilityFixture()
	f.apptRepo.overlapping = func(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error) {
		return []models.Appointment{{
			TenantID:        tenantID,
			ScheduledAt:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
		}}, nil
	}

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	// 09:30, 10:00 and 10:30 starts all overlap the 10:00-11:00 booking
	assert.Equal(t, []string{"09:00", "11:00"}, resp.Days[0].Slots)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[1].Slots)
}

func TestFreeSlotsBlocksExternalEvents(t *testing.T) {
	f := newAvailabilityFixture()
	f.configRepo.config.ExternalCalendar = "cal-main"
	f.calendar.enabled = true
	f.calendar.events = []CalendarEvent{{
		ID:    "ev-1",
		Start: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	}}

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsDegradesWhenCalendarUnavailable(t *testing.T) {
	f := newAvailabilityFixture()
	f.configRepo.config.ExternalCalendar = "cal-main"
	f.calendar.enabled = true
	f.calendar.listErr = errors.New("connection refused")

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	assert.False(t, resp.Verified)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsStaffModelCountsFreeStaff(t *testing.T) {
	f := newAvailabilityFixture()
	f.configRepo.config.StaffModel = true
	staffA := uuid.New()
	staffB := uuid.New()
	f.employees.getActiveByTenant = func(tenantID uuid.UUID) ([]models.Employee, error) {
		return []models.Employee{
			{BaseModel: models.BaseModel{ID: staffA}, TenantID: tenantID, Name: "ana", IsActive: true},
			{BaseModel: models.BaseModel{ID: staffB}, TenantID: tenantID, Name: "sofia", IsActive: true},
		}, nil
	}
	f.apptRepo.overlapping = func(tenantID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Appointment, error) {
		return []models.Appointment{{
			TenantID:        tenantID,
			ScheduledAt:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			PrimaryStaffID:  &staffA,
		}}, nil
	}

	// one of two staff is booked 10:00-11:00; the other keeps the slots open
	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)

	// requiring a pair leaves no capacity while ana is booked
	f.configRepo.config.RequireStaffPair = true
	resp, err = f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsStaffModelExternalEventsBlockEveryone(t *testing.T) {
	f := newAvailabilityFixture()
	f.configRepo.config.StaffModel = true
	f.configRepo.config.ExternalCalendar = "cal-main"
	f.calendar.enabled = true
	f.calendar.events = []CalendarEvent{{
		ID:    "ev-1",
		Start: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
	}}
	f.employees.getActiveByTenant = func(tenantID uuid.UUID) ([]models.Employee, error) {
		return []models.Employee{
			{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenantID, Name: "ana", IsActive: true},
			{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: tenantID, Name: "sofia", IsActive: true},
		}, nil
	}

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsRoutesByContactTags(t *testing.T) {
	f := newAvailabilityFixture()
	contactID := uuid.New()
	f.contacts.getByID = func(id uuid.UUID) (*models.Contact, error) {
		return &models.Contact{
			BaseModel: models.BaseModel{ID: id},
			TenantID:  f.tenantID,
			Phone:     "+15550001111",
			Tags:      []string{"vip"},
		}, nil
	}
	f.configRepo.config.Key = "vip"
	f.configRepo.config.SelectorTag = "vip"

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID:  f.tenantID,
		ContactID: &contactID,
	})

	require.NoError(t, err)
	assert.Equal(t, "vip", resp.CalendarKey)
}

func TestFreeSlotsContactFromOtherTenant(t *testing.T) {
	f := newAvailabilityFixture()
	contactID := uuid.New()
	f.contacts.getByID = func(id uuid.UUID) (*models.Contact, error) {
		return &models.Contact{
			BaseModel: models.BaseModel{ID: id},
			TenantID:  uuid.New(),
			Phone:     "+15550001111",
		}, nil
	}

	_, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID:  f.tenantID,
		ContactID: &contactID,
	})

	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestFreeSlotsWithoutConfiguration(t *testing.T) {
	f := newAvailabilityFixture()
	f.configRepo.config = nil
	f.configRepo.err = gorm.ErrRecordNotFound

	_, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{TenantID: f.tenantID})

	assert.ErrorIs(t, err, apperrors.ErrNoCalendarConfigured)
}

func TestFreeSlotsCapsDaysAtLookahead(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID: f.tenantID,
		Days:     30,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Days, 3)
}

func TestFreeSlotsSingleDate(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID: f.tenantID,
		Date:     "2026-03-12",
		Days:     30, // ignored when a date is given
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2026-03-12", resp.Days[0].Date)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsSingleDateInThePast(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID: f.tenantID,
		Date:     "2026-03-09",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Empty(t, resp.Days[0].Slots)
}

func TestFreeSlotsSingleDateInvalidFormat(t *testing.T) {
	f := newAvailabilityFixture()

	_, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID: f.tenantID,
		Date:     "12/03/2026",
	})

	assert.True(t, apperrors.IsValidation(err))
}

func TestFreeSlotsExplicitRange(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID: f.tenantID,
		From:     "2026-03-11",
		To:       "2026-03-13",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-03-11", resp.Days[0].Date)
	assert.Equal(t, "2026-03-13", resp.Days[2].Date)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Days[0].Slots)
}

func TestFreeSlotsRangeValidation(t *testing.T) {
	f := newAvailabilityFixture()

	tests := []struct {
		name string
		req  FreeSlotsRequest
	}{
		{"FromWithoutTo", FreeSlotsRequest{From: "2026-03-11"}},
		{"ToBeforeFrom", FreeSlotsRequest{From: "2026-03-13", To: "2026-03-11"}},
		{"BadFrom", FreeSlotsRequest{From: "11/03/2026", To: "2026-03-13"}},
		{"RangeTooLong", FreeSlotsRequest{From: "2026-03-11", To: "2026-09-11"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.TenantID = f.tenantID

			_, err := f.service.FreeSlots(context.Background(), &req)

			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestFreeSlotsDurationLeavesNoRoom(t *testing.T) {
	f := newAvailabilityFixture()

	resp, err := f.service.FreeSlots(context.Background(), &FreeSlotsRequest{
		TenantID:        f.tenantID,
		DurationMinutes: 240,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Days[0].Slots)
}
