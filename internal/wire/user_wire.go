package wire

import (
	"vridhira/internal/adaptor"
	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/user/profile", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	// User management requires authentication AND at least the admin role.
	// ChangeRole applies the finer-grained hierarchy rules itself.
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.RequireRole(entity.RoleAdmin, log),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)            // GET /api/admin/users?page=1&per_page=10
		r.Patch("/{id}/role", userHandler.ChangeRole)  // PATCH /api/admin/users/{user-id}/role
	})
}
