package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Base
	UserID    uuid.UUID  `json:"userId"`
	Token     uuid.UUID  `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}
