package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"collabtime-api/core/errors"
	"collabtime-api/modules/scheduler/entity"

	"github.com/matryer/is"
)

func fixedFinder() *SlotFinder {
	f := NewSlotFinder()
	f.Clock = func() time.Time { return testNow }
	return f
}

func member(id, tz string, start, end int) entity.Participant {
	return entity.Participant{
		ID:                id,
		DisplayName:       id,
		Timezone:          tz,
		WorkingHoursStart: start,
		WorkingHoursEnd:   end,
	}
}

func TestFindMeetingSlotsSameTimezone(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "UTC", 9, 17),
		},
		ViewerTimezone: "UTC",
		MinDuration:    1,
		MaxDuration:    1,
	})
	is.True(appErr == nil)
	is.True(result.HasResults)
	is.True(len(result.Slots) > 0)

	top := result.Slots[0]
	is.Equal(top.StartHour, 9)
	is.Equal(top.EndHour, 10)
	is.Equal(top.Quality, entity.QualityExcellent)
	is.Equal(len(top.FlexingMembers), 0)
	is.Equal(len(top.UnavailableMembers), 0)
}

func TestFindMeetingSlotsOppositeTimezones(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	// Etc/GMT-12 is UTC+12: bob's 9-17 is 21-05 in the viewer's day, so no
	// hour overlaps alice's window.
	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "Etc/GMT-12", 9, 17),
		},
		ViewerTimezone: "UTC",
		MinDuration:    1,
		MaxDuration:    1,
		AllowFlexHours: false,
	})
	is.True(appErr == nil)
	is.Equal(result.HasResults, false)
	is.True(strings.Contains(strings.ToLower(result.Suggestion), "flex"))
}

func TestFindMeetingSlotsBoundaryFlex(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	// Etc/GMT+4 is UTC-4: bob's 9-17 is 13-21 viewer-local, a 4-hour
	// natural overlap. A 5-hour meeting forces one member to flex at the
	// boundary; the earliest-start tie-break picks 12-17 with bob coming
	// in an hour early.
	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "Etc/GMT+4", 9, 17),
		},
		ViewerTimezone: "UTC",
		MinDuration:    5,
		MaxDuration:    5,
		AllowFlexHours: true,
		FlexRange:      2,
	})
	is.True(appErr == nil)
	is.True(result.HasResults)

	top := result.Slots[0]
	is.True(top.Quality.Rank() >= entity.QualityGood.Rank())
	is.Equal(top.StartHour, 12)
	is.Equal(top.EndHour, 17)
	is.Equal(len(top.FlexingMembers), 1)
	is.Equal(top.FlexingMembers[0].ID, "bob")
	is.Equal(top.FlexingMembers[0].Flex.Direction, entity.FlexEarly)
	is.Equal(top.FlexingMembers[0].Flex.Hours, 1)
}

func TestFindMeetingSlotsNoParticipants(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		ViewerTimezone: "UTC",
	})
	is.True(appErr == nil)
	is.Equal(result.HasResults, false)
	is.True(strings.Contains(strings.ToLower(result.Suggestion), "add"))
}

func TestFindMeetingSlotsInvalidRange(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	_, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants:   []entity.Participant{member("alice", "UTC", 9, 17)},
		ViewerTimezone: "UTC",
		MinDuration:    3,
		MaxDuration:    2,
	})
	is.True(appErr != nil)
	is.Equal(appErr.Code, errors.ErrInvalidRange)
}

func TestFindMeetingSlotsInvalidTimezone(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	_, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants:   []entity.Participant{member("alice", "Not/AZone", 9, 17)},
		ViewerTimezone: "UTC",
	})
	is.True(appErr != nil)
	is.Equal(appErr.Code, errors.ErrInvalidTimezone)
}

func TestFindMeetingSlotsPartitionCompleteness(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	participants := []entity.Participant{
		member("alice", "UTC", 9, 17),
		member("bob", "Etc/GMT-4", 8, 16),
		member("carol", "Etc/GMT+4", 10, 18),
		member("dave", "Etc/GMT-12", 22, 6),
	}

	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants:   participants,
		ViewerTimezone: "UTC",
		MinDuration:    1,
		MaxDuration:    3,
		AllowFlexHours: true,
		FlexRange:      2,
	})
	is.True(appErr == nil)

	for _, slot := range result.Slots {
		seen := map[string]int{}
		for _, m := range slot.AvailableMembers {
			seen[m.ID]++
		}
		for _, m := range slot.FlexingMembers {
			seen[m.ID]++
		}
		for _, m := range slot.UnavailableMembers {
			seen[m.ID]++
		}
		is.Equal(len(seen), len(participants))
		for _, count := range seen {
			is.Equal(count, 1)
		}
	}
}

func TestFindMeetingSlotsWrapWindow(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	// A night-shift window 22-06 accepts the full 8-hour slot straddling
	// midnight; 22 is the only start hour that fits it entirely.
	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants:   []entity.Participant{member("nightowl", "UTC", 22, 6)},
		ViewerTimezone: "UTC",
		MinDuration:    8,
		MaxDuration:    8,
	})
	is.True(appErr == nil)
	is.True(result.HasResults)

	top := result.Slots[0]
	is.Equal(top.Quality, entity.QualityExcellent)
	is.Equal(top.StartHour, 22)
	is.Equal(top.EndHour, 6)
}

func TestFindMeetingSlotsFlexMonotonicity(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	base := entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "Etc/GMT+4", 9, 17),
			member("carol", "Etc/GMT-3", 9, 17),
		},
		ViewerTimezone: "UTC",
		MinDuration:    1,
		MaxDuration:    4,
	}

	withoutFlex, appErr := f.FindMeetingSlots(base)
	is.True(appErr == nil)

	flexOpts := base
	flexOpts.AllowFlexHours = true
	flexOpts.FlexRange = 2
	withFlex, appErr := f.FindMeetingSlots(flexOpts)
	is.True(appErr == nil)

	is.True(len(withoutFlex.Slots) > 0)
	is.True(len(withFlex.Slots) > 0)
	is.True(withFlex.Slots[0].Score >= withoutFlex.Slots[0].Score)
}

func TestFindMeetingSlotsDeterminism(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	opts := entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "Etc/GMT-5", 8, 16),
			member("carol", "Etc/GMT+7", 10, 18),
		},
		ViewerTimezone: "Etc/GMT-1",
		MinDuration:    1,
		MaxDuration:    4,
		AllowFlexHours: true,
		FlexRange:      2,
	}

	first, appErr := f.FindMeetingSlots(opts)
	is.True(appErr == nil)
	second, appErr := f.FindMeetingSlots(opts)
	is.True(appErr == nil)
	is.True(reflect.DeepEqual(first, second))
}

func TestFindMeetingSlotsTopFiveAndDominance(t *testing.T) {
	is := is.New(t)
	f := fixedFinder()

	result, appErr := f.FindMeetingSlots(entity.FinderOptions{
		Participants: []entity.Participant{
			member("alice", "UTC", 9, 17),
			member("bob", "UTC", 9, 17),
		},
		ViewerTimezone: "UTC",
		MinDuration:    1,
		MaxDuration:    4,
	})
	is.True(appErr == nil)
	is.True(len(result.Slots) <= 5)

	// No retained slot may sit fully inside a better-ranked retained slot
	// of the same quality.
	for i, outer := range result.Slots {
		for _, inner := range result.Slots[i+1:] {
			if inner.Quality != outer.Quality {
				continue
			}
			is.True(!containsSlot(outer, inner))
		}
	}
}

func TestFindMeetingSlotsDefaults(t *testing.T) {
	is := is.New(t)

	opts := withDefaults(entity.FinderOptions{})
	is.Equal(opts.MinDuration, 1)
	is.Equal(opts.MaxDuration, 4)
	is.Equal(opts.FlexRange, 2)
	is.Equal(opts.ViewerTimezone, "UTC")
}
