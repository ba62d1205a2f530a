package response

import (
	"time"

	"vridhira/internal/data/entity"
)

type AuthResponse struct {
	UserID      string          `json:"user_id"`
	Token       string          `json:"token,omitempty"`
	ExpiresAt   time.Time       `json:"expires_at,omitzero"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       *string         `json:"email,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Role        entity.UserRole `json:"role"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       *string         `json:"email,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Role        entity.UserRole `json:"role"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:      user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
