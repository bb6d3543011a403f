package service

import (
	"testing"
	"time"

	"collabtime-api/core/errors"

	"github.com/matryer/is"
)

// Etc/GMT zones have inverted signs (Etc/GMT-4 is UTC+4) and no DST, which
// keeps these tests independent of the real calendar date.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestTranslateHour(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		fromTz string
		toTz   string
		want   int
	}{
		{"same zone", 9, "UTC", "UTC", 9},
		{"utc to plus four", 9, "UTC", "Etc/GMT-4", 13},
		{"utc to minus four", 9, "UTC", "Etc/GMT+4", 5},
		{"plus four to utc", 13, "Etc/GMT-4", "UTC", 9},
		{"wraps past midnight", 20, "UTC", "Etc/GMT-12", 8},
		{"wraps before midnight", 3, "UTC", "Etc/GMT+5", 22},
		{"midnight stays in range", 0, "UTC", "Etc/GMT+1", 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got, appErr := TranslateHour(testNow, tt.hour, tt.fromTz, tt.toTz)
			is.True(appErr == nil)
			is.Equal(got, tt.want)
		})
	}
}

func TestTranslateHourInvalidTimezone(t *testing.T) {
	is := is.New(t)

	_, appErr := TranslateHour(testNow, 9, "Not/AZone", "UTC")
	is.True(appErr != nil)
	is.Equal(appErr.Code, errors.ErrInvalidTimezone)

	_, appErr = TranslateHour(testNow, 9, "UTC", "Also/Bogus")
	is.True(appErr != nil)
	is.Equal(appErr.Code, errors.ErrInvalidTimezone)
}

func TestZoneOffsetRounding(t *testing.T) {
	is := is.New(t)

	// Fractional offsets round to the nearest whole hour: Kolkata is
	// UTC+5:30, Kathmandu UTC+5:45.
	got, appErr := ZoneOffsetHours(testNow, "Asia/Kolkata")
	is.True(appErr == nil)
	is.Equal(got, 6)

	got, appErr = ZoneOffsetHours(testNow, "Asia/Kathmandu")
	is.True(appErr == nil)
	is.Equal(got, 6)
}
