package request

type RegisterRequest struct {
	FirstName   string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName    string  `json:"last_name" validate:"required,min=1,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,min=10,max=15"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RequestOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
	Purpose     string `json:"purpose" validate:"required,oneof=phone_verification password_reset"`
}

type ResetPasswordRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
	OTP         string `json:"otp" validate:"required,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
