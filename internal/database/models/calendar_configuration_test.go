package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarConfigurationValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  CalendarConfiguration
		wantErr string
	}{
		{
			name:   "valid",
			config: CalendarConfiguration{OpenHour: 9, CloseHour: 18, Timezone: "UTC"},
		},
		{
			name:    "close before open",
			config:  CalendarConfiguration{OpenHour: 18, CloseHour: 9, Timezone: "UTC"},
			wantErr: "must be after opening time",
		},
		{
			name:    "close equals open",
			config:  CalendarConfiguration{OpenHour: 9, CloseHour: 9, Timezone: "UTC"},
			wantErr: "must be after opening time",
		},
		{
			name:   "minutes decide when hours tie",
			config: CalendarConfiguration{OpenHour: 9, CloseHour: 9, CloseMinute: 30, Timezone: "UTC"},
		},
		{
			name:    "bad timezone",
			config:  CalendarConfiguration{OpenHour: 9, CloseHour: 18, Timezone: "Mars/Olympus"},
			wantErr: "invalid timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestCalendarConfigurationOperatingHours(t *testing.T) {
	config := CalendarConfiguration{
		OpenHour:    9,
		OpenMinute:  30,
		CloseHour:   18,
		CloseMinute: 0,
		Timezone:    "America/Mexico_City",
	}

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	open := config.OpensAt(day)
	close := config.ClosesAt(day)

	assert.Equal(t, "America/Mexico_City", open.Location().String())
	assert.Equal(t, 9, open.Hour())
	assert.Equal(t, 30, open.Minute())
	assert.Equal(t, 18, close.Hour())
	assert.True(t, close.After(open))
}

func TestCalendarConfigurationLocationFallback(t *testing.T) {
	config := CalendarConfiguration{Timezone: "not-a-zone"}

	assert.Equal(t, time.UTC, config.Location())
}
