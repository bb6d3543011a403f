package entity

import (
	"github.com/google/uuid"

	"collabtime-api/core/entity"
)

// Team is a workspace of members sharing one schedule view
type Team struct {
	Name    string    `db:"name" json:"name"`
	Slug    string    `db:"slug" json:"slug"`
	OwnerID uuid.UUID `db:"owner_id" json:"owner_id"`

	entity.BaseEntity
}

// TeamMember is one person on a team. Working hours are local wall-clock
// hours in [0,23]; end < start wraps past midnight.
type TeamMember struct {
	TeamID            uuid.UUID  `db:"team_id" json:"team_id"`
	UserID            *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	DisplayName       string     `db:"display_name" json:"display_name"`
	Title             *string    `db:"title" json:"title,omitempty"`
	Timezone          string     `db:"timezone" json:"timezone"`
	WorkingHoursStart int        `db:"working_hours_start" json:"working_hours_start"`
	WorkingHoursEnd   int        `db:"working_hours_end" json:"working_hours_end"`
	GroupID           *uuid.UUID `db:"group_id" json:"group_id,omitempty"`
	AvatarURL         *string    `db:"avatar_url" json:"avatar_url,omitempty"`

	entity.BaseEntity
}

// MemberGroup partitions a team's members for filtered scheduling
type MemberGroup struct {
	TeamID uuid.UUID `db:"team_id" json:"team_id"`
	Name   string    `db:"name" json:"name"`

	entity.BaseEntity
}

type PaginatedTeamResponse = entity.Pagination[Team]
