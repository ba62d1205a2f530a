package repository

import (
	"context"
	"testing"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newShop(ownerID uuid.UUID, name string) *entity.Shop {
	return &entity.Shop{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		OwnerID:  ownerID,
		Name:     name,
		Category: "handicrafts",
	}
}

func TestShopCreateAndFind(t *testing.T) {
	repo := NewShopRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	ownerID := utils.GenerateID()
	shop := newShop(ownerID, "Clay & Weave")
	require.NoError(t, repo.Create(ctx, shop))

	byOwner, err := repo.FindByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.NotNil(t, byOwner)
	assert.Equal(t, shop.ID, byOwner.ID)

	byID, err := repo.FindByID(ctx, shop.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Clay & Weave", byID.Name)
}

func TestShopNameConflictCaseInsensitive(t *testing.T) {
	repo := NewShopRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newShop(utils.GenerateID(), "Clay & Weave")))

	err := repo.Create(ctx, newShop(utils.GenerateID(), "CLAY & WEAVE"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// A genuinely different name is fine
	require.NoError(t, repo.Create(ctx, newShop(utils.GenerateID(), "Clay and Weave")))
}

func TestShopFindByNameMatchesAnyCase(t *testing.T) {
	repo := NewShopRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newShop(utils.GenerateID(), "Spice Route")))

	found, err := repo.FindByName(ctx, "spice route")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Spice Route", found.Name)
}

func TestShopFindByOwnerMissing(t *testing.T) {
	repo := NewShopRepository(newTestStore(t), zap.NewNop())

	found, err := repo.FindByOwner(context.Background(), utils.GenerateID())
	require.NoError(t, err)
	assert.Nil(t, found)
}
