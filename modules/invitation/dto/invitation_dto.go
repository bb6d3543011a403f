package dto

import (
	"time"

	"collabtime-api/modules/invitation/entity"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AcceptInvitationRequest struct {
	DisplayName       string  `json:"display_name" validate:"required"`
	Title             *string `json:"title,omitempty"`
	Timezone          string  `json:"timezone" validate:"required"`
	WorkingHoursStart int     `json:"working_hours_start"`
	WorkingHoursEnd   int     `json:"working_hours_end"`
}

type InvitationResponse struct {
	ID        uuid.UUID               `json:"id"`
	TeamID    uuid.UUID               `json:"team_id"`
	Email     string                  `json:"email"`
	Code      string                  `json:"code"`
	Status    entity.InvitationStatus `json:"status"`
	ExpiresAt time.Time               `json:"expires_at"`
	CreatedAt time.Time               `json:"created_at"`
}

func ToInvitationResponse(inv *entity.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:        inv.ID,
		TeamID:    inv.TeamID,
		Email:     inv.Email,
		Code:      inv.Code,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func ToInvitationResponses(invs []entity.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invs))
	for i := range invs {
		out = append(out, *ToInvitationResponse(&invs[i]))
	}
	return out
}
