package dto

import (
	"time"

	"github.com/google/uuid"

	"collabtime-api/modules/team/entity"
)

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type UpdateTeamRequest struct {
	Name string `json:"name"`
}

type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToTeamResponse(t *entity.Team) *TeamResponse {
	return &TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		OwnerID:   t.OwnerID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type MemberRequest struct {
	DisplayName       string `json:"display_name"`
	Title             string `json:"title"`
	Timezone          string `json:"timezone"`
	WorkingHoursStart int    `json:"working_hours_start"`
	WorkingHoursEnd   int    `json:"working_hours_end"`
	GroupID           string `json:"group_id,omitempty"`
}

type MemberResponse struct {
	ID                uuid.UUID  `json:"id"`
	TeamID            uuid.UUID  `json:"team_id"`
	DisplayName       string     `json:"display_name"`
	Title             string     `json:"title,omitempty"`
	Timezone          string     `json:"timezone"`
	WorkingHoursStart int        `json:"working_hours_start"`
	WorkingHoursEnd   int        `json:"working_hours_end"`
	GroupID           *uuid.UUID `json:"group_id,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ToMemberResponse(m *entity.TeamMember) *MemberResponse {
	resp := &MemberResponse{
		ID:                m.ID,
		TeamID:            m.TeamID,
		DisplayName:       m.DisplayName,
		Timezone:          m.Timezone,
		WorkingHoursStart: m.WorkingHoursStart,
		WorkingHoursEnd:   m.WorkingHoursEnd,
		GroupID:           m.GroupID,
		CreatedAt:         m.CreatedAt,
	}
	if m.Title != nil {
		resp.Title = *m.Title
	}
	if m.AvatarURL != nil {
		resp.AvatarURL = *m.AvatarURL
	}
	return resp
}

type GroupRequest struct {
	Name string `json:"name"`
}

type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToGroupResponse(g *entity.MemberGroup) *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		TeamID:    g.TeamID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

type AvatarUploadResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
