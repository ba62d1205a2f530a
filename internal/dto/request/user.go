package request

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user shopkeeper admin"`
}
