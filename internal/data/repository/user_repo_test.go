package repository

import (
	"context"
	"testing"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"
	"vridhira/pkg/utils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.NewFileStore(afero.NewMemMapFs(), "data", zap.NewNop())
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string {
	return &s
}

func newUser(email, phone string) *entity.User {
	user := &entity.User{
		ID:        utils.GenerateID(),
		FirstName: "Asha",
		LastName:  "Rao",
		Role:      entity.RoleUser,
	}
	if email != "" {
		user.Email = strPtr(email)
	}
	if phone != "" {
		user.PhoneNumber = strPtr(phone)
	}
	return user
}

func TestUserCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	user := newUser("asha@example.com", "+911234567890")
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byPhone, err := repo.FindByPhone(ctx, "+911234567890")
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, user.ID, byPhone.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, entity.RoleUser, byID.Role)
}

func TestUserFindIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("Asha@example.com", "")))

	found, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Nil(t, found, "email matching is case-sensitive exact")
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("asha@example.com", "")))

	err := repo.Create(ctx, newUser("asha@example.com", ""))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUserCreateDuplicatePhone(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("", "+911234567890")))

	err := repo.Create(ctx, newUser("other@example.com", "+911234567890"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUserUpdateRole(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	user := newUser("asha@example.com", "")
	require.NoError(t, repo.Create(ctx, user))

	updated, err := repo.UpdateRole(ctx, user.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	// The change is persisted
	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, reloaded.Role)
}

func TestUserUpdateRoleNotFound(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())

	_, err := repo.UpdateRole(context.Background(), utils.GenerateID(), entity.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserUpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	user := newUser("", "+911234567890")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, "+911234567890", "new-hash"))

	reloaded, err := repo.FindByPhone(ctx, "+911234567890")
	require.NoError(t, err)
	require.NotNil(t, reloaded.PasswordHash)
	assert.Equal(t, "new-hash", *reloaded.PasswordHash)

	err = repo.UpdatePassword(ctx, "+910000000000", "hash")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserFindAllPagination(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newUser("", "+9112345678"+string(rune('0'+i)))))
	}

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	page, err := repo.FindAll(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	tail, err := repo.FindAll(ctx, 10, 4)
	require.NoError(t, err)
	assert.Len(t, tail, 1)

	beyond, err := repo.FindAll(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}
