package usecase

import (
	"context"
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

func seedProduct(t *testing.T, repo *repository.Repository) *entity.Product {
	t.Helper()
	_, shop := seedShopWithOwner(t, repo, "potter")
	product := &entity.Product{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		ShopID:   shop.ID,
		Name:     "Terracotta vase",
		Price:    24.5,
		Category: "pottery",
	}
	require.NoError(t, repo.Product.Create(context.Background(), product))
	return product
}

func TestAddReviewCarriesAuthorName(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo.Review, repo.Product, repo.User, zap.NewNop())
	ctx := context.Background()

	product := seedProduct(t, repo)
	author := seedUser(t, repo, "Asha", entity.RoleUser)

	resp, err := svc.AddReview(ctx, author.ID, &request.CreateReviewRequest{
		ProductID: product.ID.String(),
		Rating:    4,
		Comment:   "Sturdy and well glazed.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Tester", resp.Author)
	assert.Equal(t, 4, resp.Rating)
}

func TestAddReviewProductMustExist(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo.Review, repo.Product, repo.User, zap.NewNop())
	ctx := context.Background()

	author := seedUser(t, repo, "Asha", entity.RoleUser)

	_, err := svc.AddReview(ctx, author.ID, &request.CreateReviewRequest{
		ProductID: utils.GenerateID().String(),
		Rating:    4,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAddReviewRatingOutOfRange(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo.Review, repo.Product, repo.User, zap.NewNop())
	ctx := context.Background()

	product := seedProduct(t, repo)
	author := seedUser(t, repo, "Asha", entity.RoleUser)

	_, err := svc.AddReview(ctx, author.ID, &request.CreateReviewRequest{
		ProductID: product.ID.String(),
		Rating:    6,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestProductStats(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo.Review, repo.Product, repo.User, zap.NewNop())
	ctx := context.Background()

	product := seedProduct(t, repo)
	author := seedUser(t, repo, "Asha", entity.RoleUser)

	stats, err := svc.ProductStats(ctx, product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.ReviewCount)
	assert.Equal(t, 0.0, stats.AverageRating)

	for _, rating := range []int{5, 4, 3} {
		_, err := svc.AddReview(ctx, author.ID, &request.CreateReviewRequest{
			ProductID: product.ID.String(),
			Rating:    rating,
		})
		require.NoError(t, err)
	}

	stats, err = svc.ProductStats(ctx, product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ReviewCount)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
}

func TestListByProduct(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo.Review, repo.Product, repo.User, zap.NewNop())
	ctx := context.Background()

	product := seedProduct(t, repo)
	author := seedUser(t, repo, "Asha", entity.RoleUser)

	_, err := svc.AddReview(ctx, author.ID, &request.CreateReviewRequest{
		ProductID: product.ID.String(),
		Rating:    5,
		Comment:   "Lovely.",
	})
	require.NoError(t, err)

	reviews, err := svc.ListByProduct(ctx, product.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, product.ID.String(), reviews[0].ProductID)

	_, err = svc.ListByProduct(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
