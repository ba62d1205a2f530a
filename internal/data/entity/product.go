package entity

import (
	"github.com/google/uuid"
)

type Product struct {
	Base
	ShopID      uuid.UUID `json:"shopId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
}
