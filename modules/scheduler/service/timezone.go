package service

import (
	"fmt"
	"math"
	"time"

	"collabtime-api/core/errors"
)

// ZoneOffsetHours returns the UTC offset of tz in whole hours at the instant
// now. Fractional offsets (UTC+5:30, UTC+9:30, ...) are rounded to the
// nearest hour; the integer-hour model can misclassify availability near
// window boundaries for those zones.
func ZoneOffsetHours(now time.Time, tz string) (int, *errors.AppError) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInvalidTimezone, fmt.Sprintf("unknown timezone %q", tz), err)
	}
	_, seconds := now.In(loc).Zone()
	return int(math.Round(float64(seconds) / 3600.0)), nil
}

// TranslateHour converts an hour-of-day in fromTz to the corresponding
// hour-of-day in toTz, using each zone's UTC offset at the instant now so
// that DST is tracked for "today". The result is normalized into [0,23].
func TranslateHour(now time.Time, hour int, fromTz, toTz string) (int, *errors.AppError) {
	fromOffset, appErr := ZoneOffsetHours(now, fromTz)
	if appErr != nil {
		return 0, appErr
	}
	toOffset, appErr := ZoneOffsetHours(now, toTz)
	if appErr != nil {
		return 0, appErr
	}
	return ((hour+toOffset-fromOffset)%24 + 24) % 24, nil
}
