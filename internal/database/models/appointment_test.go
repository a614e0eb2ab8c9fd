package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, "2026-03", PeriodOf(time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-04", PeriodOf(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestAppointmentOverlaps(t *testing.T) {
	start := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	appointment := &Appointment{ScheduledAt: start, DurationMinutes: 60}

	assert.Equal(t, start.Add(time.Hour), appointment.EndsAt())

	// Half-open intervals: touching boundaries do not overlap
	assert.True(t, appointment.Overlaps(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.False(t, appointment.Overlaps(start.Add(time.Hour), start.Add(2*time.Hour)))
	assert.False(t, appointment.Overlaps(start.Add(-time.Hour), start))
}

func TestAppointmentStaffIDs(t *testing.T) {
	appointment := &Appointment{}
	assert.Empty(t, appointment.StaffIDs())

	primary := uuid.New()
	appointment.PrimaryStaffID = &primary
	assert.Len(t, appointment.StaffIDs(), 1)

	second := uuid.New()
	appointment.SecondStaffID = &second
	assert.Equal(t, []uuid.UUID{primary, second}, appointment.StaffIDs())
}
