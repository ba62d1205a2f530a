package usecase

import (
	"context"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/request"
	"vridhira/internal/dto/response"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	AddReview(ctx context.Context, authorID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByProduct(ctx context.Context, productID string) ([]response.ReviewResponse, error)
	ProductStats(ctx context.Context, productID string) (*response.ProductReviewStats, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         *zap.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

func (rs *reviewService) AddReview(ctx context.Context, authorID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Add review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.Validation("invalid product ID")
	}

	// 2. Product must exist
	product, err := rs.productRepo.FindByID(ctx, productID)
	if err != nil {
		rs.log.Error("Failed to find product for review", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	// 3. Reviews carry the author's display name
	author, err := rs.userRepo.FindByID(ctx, authorID)
	if err != nil {
		rs.log.Error("Failed to load review author", zap.Error(err), zap.String("author_id", authorID.String()))
		return nil, err
	}
	if author == nil {
		return nil, apperr.Authorization("acting account no longer exists")
	}

	// 4. Append review
	review := &entity.Review{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		ProductID: productID,
		Author:    author.FullName(),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := rs.reviewRepo.Create(ctx, review); err != nil {
		rs.log.Error("Failed to create review", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, err
	}

	rs.log.Info("Review added",
		zap.String("review_id", review.ID.String()),
		zap.String("product_id", req.ProductID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (rs *reviewService) ListByProduct(ctx context.Context, productID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperr.Validation("invalid product ID")
	}

	reviews, err := rs.reviewRepo.FindByProduct(ctx, id)
	if err != nil {
		rs.log.Error("Failed to list reviews", zap.Error(err), zap.String("product_id", productID))
		return nil, err
	}

	result := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		result[i] = response.ReviewToResponse(review)
	}

	return result, nil
}

func (rs *reviewService) ProductStats(ctx context.Context, productID string) (*response.ProductReviewStats, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperr.Validation("invalid product ID")
	}

	reviews, err := rs.reviewRepo.FindByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &response.ProductReviewStats{ReviewCount: int64(len(reviews))}
	if len(reviews) == 0 {
		return stats, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	stats.AverageRating = float64(sum) / float64(len(reviews))

	return stats, nil
}
