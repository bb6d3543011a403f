package service

import "collabtime-api/modules/scheduler/entity"

// IsWithinWindow reports whether hour falls inside the half-open working
// window [start, end). A window with end < start wraps past midnight; a
// window with start == end denotes an always-available member.
func IsWithinWindow(hour, start, end int) bool {
	if start == end {
		return true
	}
	if start < end {
		return hour >= start && hour < end
	}
	// wraps midnight
	return hour >= start || hour < end
}

// TryFlex decides whether a member outside their window at hour could cover
// it by shifting the window by up to maxShift hours. Shifting "early" moves
// the start earlier (coming in before usual hours), "late" moves the end
// later (staying on). The smallest sufficient shift wins; at equal shift
// "late" is preferred so results stay deterministic. Returns nil when no
// shift up to maxShift helps.
func TryFlex(hour, start, end, maxShift int) *entity.Flex {
	for s := 1; s <= maxShift; s++ {
		if IsWithinWindow(hour, start, (end+s)%24) {
			return &entity.Flex{Direction: entity.FlexLate, Hours: s}
		}
		if IsWithinWindow(hour, ((start-s)%24+24)%24, end) {
			return &entity.Flex{Direction: entity.FlexEarly, Hours: s}
		}
	}
	return nil
}

// tryFlexWindow is the whole-window variant used by the search engine: every
// hour of the candidate window (member-local, wrap-aware) must fit inside the
// same shifted window. The shift ordering matches TryFlex.
func tryFlexWindow(hours []int, start, end, maxShift int) *entity.Flex {
	for s := 1; s <= maxShift; s++ {
		if allWithin(hours, start, (end+s)%24) {
			return &entity.Flex{Direction: entity.FlexLate, Hours: s}
		}
		if allWithin(hours, ((start-s)%24+24)%24, end) {
			return &entity.Flex{Direction: entity.FlexEarly, Hours: s}
		}
	}
	return nil
}

func allWithin(hours []int, start, end int) bool {
	for _, h := range hours {
		if !IsWithinWindow(h, start, end) {
			return false
		}
	}
	return true
}
