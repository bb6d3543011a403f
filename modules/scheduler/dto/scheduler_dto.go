package dto

import "collabtime-api/modules/scheduler/entity"

// FindSlotsRequest configures a slot search over one team
type FindSlotsRequest struct {
	ViewerTimezone string `json:"viewer_timezone"`
	MinDuration    int    `json:"min_duration"`
	MaxDuration    int    `json:"max_duration"`
	AllowFlexHours bool   `json:"allow_flex_hours"`
	FlexRange      int    `json:"flex_range"`
	GroupID        string `json:"group_id,omitempty"`
}

// FindSlotsResponse wraps the finder result for the presentation layer
type FindSlotsResponse struct {
	TeamID     string               `json:"team_id"`
	HasResults bool                 `json:"has_results"`
	Slots      []entity.MeetingSlot `json:"slots"`
	Suggestion string               `json:"suggestion,omitempty"`
}

func ToFindSlotsResponse(teamID string, result *entity.FinderResult) *FindSlotsResponse {
	return &FindSlotsResponse{
		TeamID:     teamID,
		HasResults: result.HasResults,
		Slots:      result.Slots,
		Suggestion: result.Suggestion,
	}
}

// TeamStatusResponse is the current-status view of a team
type TeamStatusResponse struct {
	TeamID         string                `json:"team_id"`
	ViewerTimezone string                `json:"viewer_timezone"`
	Members        []entity.MemberStatus `json:"members"`
}
