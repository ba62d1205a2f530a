package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/request"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedShopWithOwner(t *testing.T, repo *repository.Repository, name string) (*entity.User, *entity.Shop) {
	t.Helper()
	owner := seedUser(t, repo, name, entity.RoleShopkeeper)
	shop := &entity.Shop{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		OwnerID:  owner.ID,
		Name:     fmt.Sprintf("%s's shop", name),
		Category: "crafts",
	}
	require.NoError(t, repo.Shop.Create(context.Background(), shop))
	return owner, shop
}

func TestCreateProduct(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProductService(repo.Product, repo.Shop, zap.NewNop())
	ctx := context.Background()

	seller, shop := seedShopWithOwner(t, repo, "potter")

	resp, err := svc.CreateProduct(ctx, seller.ID, &request.CreateProductRequest{
		Name:     "Terracotta vase",
		Price:    24.5,
		Category: "pottery",
	})
	require.NoError(t, err)
	assert.Equal(t, shop.ID.String(), resp.ShopID)
	assert.Equal(t, 24.5, resp.Price)
}

func TestCreateProductWithoutShop(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProductService(repo.Product, repo.Shop, zap.NewNop())
	ctx := context.Background()

	seller := seedUser(t, repo, "shopless", entity.RoleShopkeeper)

	_, err := svc.CreateProduct(ctx, seller.ID, &request.CreateProductRequest{
		Name:     "Terracotta vase",
		Price:    24.5,
		Category: "pottery",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestListByShop(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProductService(repo.Product, repo.Shop, zap.NewNop())
	ctx := context.Background()

	seller, shop := seedShopWithOwner(t, repo, "potter")
	other, _ := seedShopWithOwner(t, repo, "weaver")

	for _, name := range []string{"Vase", "Bowl"} {
		_, err := svc.CreateProduct(ctx, seller.ID, &request.CreateProductRequest{
			Name:     name,
			Price:    10,
			Category: "pottery",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateProduct(ctx, other.ID, &request.CreateProductRequest{
		Name:     "Rug",
		Price:    55,
		Category: "textiles",
	})
	require.NoError(t, err)

	products, err := svc.ListByShop(ctx, shop.ID.String())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = svc.ListByShop(ctx, utils.GenerateID().String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListProductsPagination(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProductService(repo.Product, repo.Shop, zap.NewNop())
	ctx := context.Background()

	seller, _ := seedShopWithOwner(t, repo, "potter")
	for i := 0; i < 5; i++ {
		_, err := svc.CreateProduct(ctx, seller.ID, &request.CreateProductRequest{
			Name:     fmt.Sprintf("Item %d", i),
			Price:    float64(i + 1),
			Category: "pottery",
		})
		require.NoError(t, err)
	}

	page, err := svc.ListProducts(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Pagination.Total)
}

func TestGetProductNotFound(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProductService(repo.Product, repo.Shop, zap.NewNop())

	_, err := svc.GetProduct(context.Background(), utils.GenerateID().String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
