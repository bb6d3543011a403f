package service

import (
	"testing"
	"time"

	"collabtime-api/modules/scheduler/entity"

	"github.com/matryer/is"
)

func TestMemberStatusAt(t *testing.T) {
	// 14:30 UTC; statuses hinge on the member's local hour 14.
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		member entity.Participant
		want   entity.MemberStatusKind
	}{
		{"mid window", member("a", "UTC", 9, 17), entity.StatusWorking},
		{"last hour of window", member("b", "UTC", 9, 15), entity.StatusEndingSoon},
		{"hour before window", member("c", "UTC", 15, 23), entity.StatusStartingSoon},
		{"off hours", member("d", "UTC", 0, 5), entity.StatusOff},
		{"working in another zone", member("e", "Etc/GMT-4", 9, 20), entity.StatusWorking},
		{"wrap window working", member("f", "UTC", 13, 2), entity.StatusWorking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			status, appErr := MemberStatusAt(now, tt.member, "UTC")
			is.True(appErr == nil)
			is.Equal(status.Status, tt.want)
		})
	}
}

func TestMemberStatusAtLocalHour(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	status, appErr := MemberStatusAt(now, member("a", "Etc/GMT-4", 9, 17), "UTC")
	is.True(appErr == nil)
	is.Equal(status.LocalHour, 18)
	is.Equal(status.Status, entity.StatusOff)
}

func TestMemberStatusAtInvalidViewerTimezone(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	_, appErr := MemberStatusAt(now, member("a", "UTC", 9, 17), "Bad/Zone")
	is.True(appErr != nil)
}
