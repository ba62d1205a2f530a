package repository

import (
	"context"
	"sync"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewReviewRepository(store storage.Store, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		store: store,
		log:   log,
	}
}

func (rr *reviewRepository) readAll(ctx context.Context) ([]*entity.Review, error) {
	var reviews []*entity.Review
	if err := rr.store.ReadAll(ctx, reviewsCollection, &reviews); err != nil {
		rr.log.Error("Failed to load reviews collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load reviews")
	}
	return reviews, nil
}

// Create appends a review. The collection is append-only.
func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	reviews, err := rr.readAll(ctx)
	if err != nil {
		return err
	}

	reviews = append(reviews, review)
	if err := rr.store.WriteAll(ctx, reviewsCollection, reviews); err != nil {
		rr.log.Error("Failed to persist reviews collection", zap.Error(err))
		return apperr.Storage(err, "failed to save reviews")
	}

	return nil
}

func (rr *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := rr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []*entity.Review
	for _, review := range reviews {
		if review.ProductID == productID {
			result = append(result, review)
		}
	}

	return result, nil
}
