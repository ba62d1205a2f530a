package wire

import (
	"vridhira/internal/adaptor"
	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProduct configures catalog browsing and seller listing routes
func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/products", productHandler.ListProducts)
	r.Get("/api/products/{id}", productHandler.GetProduct)
	r.Get("/api/shops/{id}/products", productHandler.ListByShop)

	// ==================== SELLER ROUTES ====================
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.RequireRole(entity.RoleShopkeeper, log),
	).Post("/api/products", productHandler.CreateProduct)
}
