package entity

import (
	"time"

	"collabtime-api/core/entity"
)

// User is an account that can own teams and sign in
type User struct {
	Email           string     `db:"email" json:"email"`
	Password        string     `db:"password" json:"-"`
	Name            string     `db:"name" json:"name"`
	GoogleID        *string    `db:"google_id" json:"-"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`

	entity.BaseEntity
}
