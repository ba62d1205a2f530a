package request

type CreateShopRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Category string `json:"category" validate:"required,min=2,max=50"`
}
