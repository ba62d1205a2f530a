package request

type CreateReviewRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=500"`
}
