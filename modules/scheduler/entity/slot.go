package entity

// Quality is a coarse bucketing of a slot's numeric score for presentation
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// rank orders qualities for comparisons; higher is better
func (q Quality) Rank() int {
	switch q {
	case QualityExcellent:
		return 3
	case QualityGood:
		return 2
	case QualityFair:
		return 1
	default:
		return 0
	}
}

// FlexDirection is the side of the working window a member would shift
type FlexDirection string

const (
	FlexEarly FlexDirection = "early"
	FlexLate  FlexDirection = "late"
)

// Participant is the plain member view the slot finder operates on.
// Working hours are local wall-clock hours in [0,23]; end < start means the
// window wraps past midnight, start == end means always available.
type Participant struct {
	ID                string  `json:"id"`
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title,omitempty"`
	Timezone          string  `json:"timezone"`
	WorkingHoursStart int     `json:"working_hours_start"`
	WorkingHoursEnd   int     `json:"working_hours_end"`
	GroupID           *string `json:"group_id,omitempty"`
}

// Flex describes the shift that would rescue an otherwise-unavailable member
type Flex struct {
	Direction FlexDirection `json:"direction"`
	Hours     int           `json:"hours"`
}

// FlexParticipant is a participant together with the flex they would need.
// It exists only inside a slot's breakdown and is never persisted.
type FlexParticipant struct {
	Participant
	Flex Flex `json:"flex"`
}

// MeetingSlot is one ranked candidate window, expressed in the viewer's
// timezone. The three member partitions are disjoint and together cover the
// full participant set.
type MeetingSlot struct {
	StartHour          int               `json:"start_hour"`
	EndHour            int               `json:"end_hour"`
	Duration           int               `json:"duration"`
	Score              int               `json:"score"`
	Quality            Quality           `json:"quality"`
	FlexHours          int               `json:"flex_hours"`
	AvailableMembers   []Participant     `json:"available_members"`
	FlexingMembers     []FlexParticipant `json:"flexing_members"`
	UnavailableMembers []Participant     `json:"unavailable_members"`
}

// FinderOptions configures a slot search. Zero-valued durations fall back to
// the documented defaults (min 1, max 4); FlexRange defaults to 2 when flex
// is enabled.
type FinderOptions struct {
	Participants   []Participant `json:"participants"`
	ViewerTimezone string        `json:"viewer_timezone"`
	MinDuration    int           `json:"min_duration"`
	MaxDuration    int           `json:"max_duration"`
	AllowFlexHours bool          `json:"allow_flex_hours"`
	FlexRange      int           `json:"flex_range"`
}

// FinderResult is the ranked outcome of a slot search. When HasResults is
// false, Suggestion explains what the caller could change.
type FinderResult struct {
	HasResults bool          `json:"has_results"`
	Slots      []MeetingSlot `json:"slots"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// MemberStatusKind classifies a member's current position in their working
// window
type MemberStatusKind string

const (
	StatusWorking      MemberStatusKind = "working"
	StatusStartingSoon MemberStatusKind = "starting_soon"
	StatusEndingSoon   MemberStatusKind = "ending_soon"
	StatusOff          MemberStatusKind = "off"
)

// MemberStatus is the current-status view of one participant
type MemberStatus struct {
	Participant
	LocalHour int              `json:"local_hour"`
	Status    MemberStatusKind `json:"status"`
}
