package wire

import (
	"vridhira/internal/adaptor"
	"vridhira/internal/data/repository"
	"vridhira/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireShop configures shop browsing and vendor onboarding routes
func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/shops", shopHandler.ListShops)
	r.Get("/api/shops/{id}", shopHandler.GetShop)

	// ==================== PROTECTED ROUTES ====================
	// Any authenticated user can onboard as a vendor, the service promotes
	// them to shopkeeper.
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/shops", shopHandler.CreateShop)
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/user/shop", shopHandler.GetMyShop)
}
