package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevels(t *testing.T) {
	assert.Less(t, RoleUser.Level(), RoleShopkeeper.Level())
	assert.Less(t, RoleShopkeeper.Level(), RoleAdmin.Level())
	assert.Less(t, RoleAdmin.Level(), RoleOwner.Level())
	assert.Equal(t, 0, UserRole("janitor").Level())
	assert.False(t, UserRole("janitor").Valid())
}

func TestCanChangeTarget(t *testing.T) {
	tests := []struct {
		name   string
		actor  UserRole
		target UserRole
		want   bool
	}{
		{"owner manages owner", RoleOwner, RoleOwner, true},
		{"owner manages admin", RoleOwner, RoleAdmin, true},
		{"owner manages user", RoleOwner, RoleUser, true},
		{"admin manages user", RoleAdmin, RoleUser, true},
		{"admin manages shopkeeper", RoleAdmin, RoleShopkeeper, true},
		{"admin cannot manage admin", RoleAdmin, RoleAdmin, false},
		{"admin cannot manage owner", RoleAdmin, RoleOwner, false},
		{"shopkeeper cannot manage anyone", RoleShopkeeper, RoleUser, false},
		{"user cannot manage anyone", RoleUser, RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanChangeTarget(tt.target))
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   UserRole
		newRole UserRole
		want    bool
	}{
		{"owner assigns admin", RoleOwner, RoleAdmin, true},
		{"owner assigns shopkeeper", RoleOwner, RoleShopkeeper, true},
		{"admin cannot assign admin", RoleAdmin, RoleAdmin, false},
		{"admin assigns shopkeeper", RoleAdmin, RoleShopkeeper, true},
		{"admin assigns user", RoleAdmin, RoleUser, true},
		{"nobody assigns owner", RoleOwner, RoleOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanAssignRole(tt.newRole))
		})
	}
}
