package entity

import (
	"time"

	coreEntity "collabtime-api/core/entity"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRevoked  InvitationStatus = "revoked"
)

// Invitation is a pending request for someone to join a team
type Invitation struct {
	coreEntity.BaseEntity
	TeamID    uuid.UUID        `db:"team_id" json:"team_id"`
	Email     string           `db:"email" json:"email"`
	Code      string           `db:"code" json:"code"`
	Status    InvitationStatus `db:"status" json:"status"`
	InvitedBy uuid.UUID        `db:"invited_by" json:"invited_by"`
	ExpiresAt time.Time        `db:"expires_at" json:"expires_at"`
}

// Expired reports whether the invitation can no longer be accepted.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
