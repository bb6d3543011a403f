package service

import (
	"time"

	"collabtime-api/core/errors"
	"collabtime-api/modules/scheduler/entity"
)

// MemberStatusAt classifies one participant's position in their working
// window at the instant now, for the team status view. "Soon" means within
// one hour of the window boundary.
func MemberStatusAt(now time.Time, p entity.Participant, viewerTz string) (*entity.MemberStatus, *errors.AppError) {
	viewerHour, appErr := TranslateHour(now, now.UTC().Hour(), "UTC", viewerTz)
	if appErr != nil {
		return nil, appErr
	}

	localHour, appErr := TranslateHour(now, viewerHour, viewerTz, p.Timezone)
	if appErr != nil {
		return nil, appErr
	}

	within := IsWithinWindow(localHour, p.WorkingHoursStart, p.WorkingHoursEnd)
	nextWithin := IsWithinWindow((localHour+1)%24, p.WorkingHoursStart, p.WorkingHoursEnd)

	var kind entity.MemberStatusKind
	switch {
	case within && !nextWithin:
		kind = entity.StatusEndingSoon
	case within:
		kind = entity.StatusWorking
	case nextWithin:
		kind = entity.StatusStartingSoon
	default:
		kind = entity.StatusOff
	}

	return &entity.MemberStatus{
		Participant: p,
		LocalHour:   localHour,
		Status:      kind,
	}, nil
}
