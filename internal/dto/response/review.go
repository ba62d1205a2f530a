package response

import (
	"time"

	"vridhira/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		ProductID: review.ProductID.String(),
		Author:    review.Author,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
