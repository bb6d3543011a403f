package service

import (
	"sort"
	"time"

	"collabtime-api/core/constants"
	"collabtime-api/core/errors"
	"collabtime-api/modules/scheduler/entity"
)

// SlotFinder searches a viewer's 24-hour day for the meeting windows that
// maximize simultaneous availability. It is stateless and safe for
// concurrent use; the only external input is "now", taken from Clock so
// tests can pin timezone offsets deterministically.
type SlotFinder struct {
	// MaxResults bounds the ranked slot list
	MaxResults int
	// Clock supplies the instant used for UTC offset resolution
	Clock func() time.Time
}

// NewSlotFinder creates a slot finder with default settings
func NewSlotFinder() *SlotFinder {
	return &SlotFinder{
		MaxResults: constants.MaxSlotResults,
		Clock:      time.Now,
	}
}

// FindMeetingSlots enumerates every (start hour, duration) candidate over the
// viewer's day, classifies each participant as available, flexing, or
// unavailable, scores the candidates, and returns the top-ranked
// non-dominated slots. An empty participant list is not an error; it yields
// a suggestion instead.
func (f *SlotFinder) FindMeetingSlots(opts entity.FinderOptions) (*entity.FinderResult, *errors.AppError) {
	opts = withDefaults(opts)

	if len(opts.Participants) == 0 {
		return &entity.FinderResult{
			HasResults: false,
			Slots:      []entity.MeetingSlot{},
			Suggestion: "Add team members before searching for meeting slots.",
		}, nil
	}

	if opts.MinDuration < 1 || opts.MaxDuration > 24 || opts.MinDuration > opts.MaxDuration {
		return nil, errors.NewAppError(errors.ErrInvalidRange, "duration range must satisfy 1 <= min <= max <= 24", nil)
	}

	now := f.Clock()

	ranked, appErr := f.rank(now, opts)
	if appErr != nil {
		return nil, appErr
	}

	result := &entity.FinderResult{
		HasResults: true,
		Slots:      ranked,
	}

	if len(ranked) == 0 || ranked[0].Quality == entity.QualityPoor {
		result.HasResults = false
		suggestion, appErr := f.suggest(now, opts)
		if appErr != nil {
			return nil, appErr
		}
		result.Suggestion = suggestion
	}

	return result, nil
}

func withDefaults(opts entity.FinderOptions) entity.FinderOptions {
	if opts.MinDuration == 0 {
		opts.MinDuration = constants.DefaultMinDuration
	}
	if opts.MaxDuration == 0 {
		opts.MaxDuration = constants.DefaultMaxDuration
	}
	if opts.FlexRange <= 0 {
		opts.FlexRange = constants.DefaultFlexRange
	}
	if opts.ViewerTimezone == "" {
		opts.ViewerTimezone = "UTC"
	}
	return opts
}

// rank generates, scores, sorts, and deduplicates candidates, returning at
// most MaxResults slots best-first.
func (f *SlotFinder) rank(now time.Time, opts entity.FinderOptions) ([]entity.MeetingSlot, *errors.AppError) {
	candidates := make([]entity.MeetingSlot, 0, 24*(opts.MaxDuration-opts.MinDuration+1))

	for startHour := 0; startHour < 24; startHour++ {
		for duration := opts.MinDuration; duration <= opts.MaxDuration; duration++ {
			slot, appErr := f.buildSlot(now, opts, startHour, duration)
			if appErr != nil {
				return nil, appErr
			}
			candidates = append(candidates, *slot)
		}
	}

	// Ranking tie-break: score desc, fewer flex-hours, earlier start,
	// shorter duration.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.FlexHours != b.FlexHours {
			return a.FlexHours < b.FlexHours
		}
		if a.StartHour != b.StartHour {
			return a.StartHour < b.StartHour
		}
		return a.Duration < b.Duration
	})

	// Drop dominated candidates: a slot fully contained in an
	// already-retained slot of the same quality adds nothing.
	kept := make([]entity.MeetingSlot, 0, f.MaxResults)
	for _, c := range candidates {
		if len(kept) >= f.MaxResults {
			break
		}
		dominated := false
		for _, k := range kept {
			if k.Quality == c.Quality && containsSlot(k, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}

	return kept, nil
}

// containsSlot reports whether inner's hour range lies fully inside outer's,
// wrap-aware.
func containsSlot(outer, inner entity.MeetingSlot) bool {
	rel := ((inner.StartHour-outer.StartHour)%24 + 24) % 24
	return rel+inner.Duration <= outer.Duration
}

// buildSlot classifies every participant for one candidate window and scores
// the resulting partition.
func (f *SlotFinder) buildSlot(now time.Time, opts entity.FinderOptions, startHour, duration int) (*entity.MeetingSlot, *errors.AppError) {
	slot := &entity.MeetingSlot{
		StartHour:          startHour,
		EndHour:            (startHour + duration) % 24,
		Duration:           duration,
		AvailableMembers:   []entity.Participant{},
		FlexingMembers:     []entity.FlexParticipant{},
		UnavailableMembers: []entity.Participant{},
	}

	for _, p := range opts.Participants {
		localStart, appErr := TranslateHour(now, startHour, opts.ViewerTimezone, p.Timezone)
		if appErr != nil {
			return nil, appErr
		}

		hours := make([]int, duration)
		for i := 0; i < duration; i++ {
			hours[i] = (localStart + i) % 24
		}

		if allWithin(hours, p.WorkingHoursStart, p.WorkingHoursEnd) {
			slot.AvailableMembers = append(slot.AvailableMembers, p)
			continue
		}

		if opts.AllowFlexHours {
			if flex := tryFlexWindow(hours, p.WorkingHoursStart, p.WorkingHoursEnd, opts.FlexRange); flex != nil {
				slot.FlexingMembers = append(slot.FlexingMembers, entity.FlexParticipant{
					Participant: p,
					Flex:        *flex,
				})
				slot.FlexHours += flex.Hours
				continue
			}
		}

		slot.UnavailableMembers = append(slot.UnavailableMembers, p)
	}

	slot.Score, slot.Quality = ScoreSlot(
		len(slot.AvailableMembers),
		len(slot.FlexingMembers),
		len(slot.UnavailableMembers),
		slot.FlexHours,
	)

	return slot, nil
}

// suggest explains why no acceptable slot exists, probing cheap option
// changes to point at the one most likely to help.
func (f *SlotFinder) suggest(now time.Time, opts entity.FinderOptions) (string, *errors.AppError) {
	// Flex is off, and some flex budget would close the gap entirely.
	if !opts.AllowFlexHours {
		flexOpts := opts
		flexOpts.AllowFlexHours = true
		flexOpts.FlexRange = 12
		best, appErr := f.bestSlot(now, flexOpts)
		if appErr != nil {
			return "", appErr
		}
		if best != nil && len(best.UnavailableMembers) == 0 {
			return "No overlapping window was found. Try enabling flex hours.", nil
		}
	}

	// A shorter meeting would fit where the requested one does not.
	if opts.MinDuration > 1 {
		shortOpts := opts
		shortOpts.MinDuration = 1
		best, appErr := f.bestSlot(now, shortOpts)
		if appErr != nil {
			return "", appErr
		}
		if best != nil && best.Quality.Rank() > entity.QualityPoor.Rank() {
			return "Only short windows are feasible. Try reducing the minimum duration.", nil
		}
	}

	return "Participants span too many timezones for any common window. Consider reducing participants or splitting the meeting.", nil
}

func (f *SlotFinder) bestSlot(now time.Time, opts entity.FinderOptions) (*entity.MeetingSlot, *errors.AppError) {
	ranked, appErr := f.rank(now, opts)
	if appErr != nil {
		return nil, appErr
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}
