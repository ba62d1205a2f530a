package entity

import (
	"github.com/google/uuid"
)

type Shop struct {
	Base
	OwnerID  uuid.UUID `json:"ownerId"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}
