package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	ProductID uuid.UUID `json:"productId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
}
