package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken records an issued refresh token so it can be validated and
// revoked. One row is persisted per issuance; revocation removes every row
// belonging to the member.
type RefreshToken struct {
	BaseModel
	MemberID  uint      `gorm:"index;not null" json:"member_id"`
	TokenID   uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
