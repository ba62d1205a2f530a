package usecase

import (
	"context"
	"testing"

	"vridhira/internal/data/entity"
	"vridhira/internal/dto/request"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateShopPromotesOwner(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())
	ctx := context.Background()

	owner := seedUser(t, repo, "potter", entity.RoleUser)

	resp, err := svc.CreateShop(ctx, owner.ID, &request.CreateShopRequest{
		Name:     "Clay & Weave",
		Category: "pottery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clay & Weave", resp.Name)
	assert.Equal(t, owner.ID.String(), resp.OwnerID)

	promoted, err := repo.User.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopkeeper, promoted.Role)
}

func TestCreateShopKeepsElevatedRole(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())
	ctx := context.Background()

	admin := seedUser(t, repo, "admin", entity.RoleAdmin)

	_, err := svc.CreateShop(ctx, admin.ID, &request.CreateShopRequest{
		Name:     "Admin Antiques",
		Category: "antiques",
	})
	require.NoError(t, err)

	// An admin opening a shop is not demoted to shopkeeper.
	stored, err := repo.User.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestCreateShopNameConflictIgnoresCase(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())
	ctx := context.Background()

	first := seedUser(t, repo, "first", entity.RoleUser)
	second := seedUser(t, repo, "second", entity.RoleUser)

	_, err := svc.CreateShop(ctx, first.ID, &request.CreateShopRequest{
		Name:     "Clay & Weave",
		Category: "pottery",
	})
	require.NoError(t, err)

	_, err = svc.CreateShop(ctx, second.ID, &request.CreateShopRequest{
		Name:     "CLAY & WEAVE",
		Category: "textiles",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The rejected applicant stays a plain user.
	stored, err := repo.User.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, stored.Role)
}

func TestCreateShopOwnerMustExist(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())

	_, err := svc.CreateShop(context.Background(), utils.GenerateID(), &request.CreateShopRequest{
		Name:     "Ghost Goods",
		Category: "misc",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetShopByOwner(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())
	ctx := context.Background()

	owner := seedUser(t, repo, "potter", entity.RoleUser)
	created, err := svc.CreateShop(ctx, owner.ID, &request.CreateShopRequest{
		Name:     "Clay & Weave",
		Category: "pottery",
	})
	require.NoError(t, err)

	resp, err := svc.GetShopByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	stranger := seedUser(t, repo, "stranger", entity.RoleUser)
	_, err = svc.GetShopByOwner(ctx, stranger.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListShops(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewShopService(repo.Shop, repo.User, zap.NewNop())
	ctx := context.Background()

	shops, err := svc.ListShops(ctx)
	require.NoError(t, err)
	assert.Empty(t, shops)

	for _, name := range []string{"Clay & Weave", "Brass Lane"} {
		owner := seedUser(t, repo, name[:4], entity.RoleUser)
		_, err := svc.CreateShop(ctx, owner.ID, &request.CreateShopRequest{
			Name:     name,
			Category: "crafts",
		})
		require.NoError(t, err)
	}

	shops, err = svc.ListShops(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 2)
}
