package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleShopkeeper UserRole = "shopkeeper"
	RoleAdmin      UserRole = "admin"
	RoleOwner      UserRole = "owner"
)

// Level returns the ordinal privilege level of a role.
// user(1) < shopkeeper(2) < admin(3) < owner(4). Unknown roles are 0.
func (r UserRole) Level() int {
	switch r {
	case RoleUser:
		return 1
	case RoleShopkeeper:
		return 2
	case RoleAdmin:
		return 3
	case RoleOwner:
		return 4
	default:
		return 0
	}
}

func (r UserRole) Valid() bool {
	return r.Level() > 0
}

// CanChangeTarget reports whether an actor with role r may change the role
// of a target whose current role is target. Owners may manage anyone,
// admins only identities strictly below admin.
func (r UserRole) CanChangeTarget(target UserRole) bool {
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin:
		return target.Level() < RoleAdmin.Level()
	default:
		return false
	}
}

// CanAssignRole reports whether an actor with role r may assign newRole.
// Only owners may hand out admin, and nobody is promoted to owner here.
func (r UserRole) CanAssignRole(newRole UserRole) bool {
	if newRole == RoleOwner {
		return false
	}
	if newRole == RoleAdmin {
		return r == RoleOwner
	}
	return true
}

type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        *string   `json:"email,omitempty"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty"`
	PasswordHash *string   `json:"password,omitempty"`
	Role         UserRole  `json:"role"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
