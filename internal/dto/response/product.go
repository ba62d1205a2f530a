package response

import (
	"time"

	"vridhira/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		ShopID:      product.ShopID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		CreatedAt:   product.CreatedAt,
	}
}
