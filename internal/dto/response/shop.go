package response

import (
	"time"

	"vridhira/internal/data/entity"
)

type ShopResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:        shop.ID.String(),
		OwnerID:   shop.OwnerID.String(),
		Name:      shop.Name,
		Category:  shop.Category,
		CreatedAt: shop.CreatedAt,
	}
}
