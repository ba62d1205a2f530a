package wire

import (
	"vridhira/internal/adaptor"
	"vridhira/internal/data/repository"
	"vridhira/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReview configures product review routes
func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/products/{id}/reviews", reviewHandler.ListByProduct)
	r.Get("/api/products/{id}/reviews/stats", reviewHandler.ProductStats)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/reviews", reviewHandler.AddReview)
}
