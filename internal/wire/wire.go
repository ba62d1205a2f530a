package wire

import (
	"context"
	"net/http"

	"vridhira/internal/adaptor"
	"vridhira/internal/data/repository"
	"vridhira/internal/usecase"
	"vridhira/pkg/middleware"
	"vridhira/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// An actor who changed their own role must re-authenticate
	service.User.OnRoleChanged(func(ctx context.Context, userID uuid.UUID, selfChange bool) {
		if !selfChange {
			return
		}
		if err := repo.Session.RevokeAllForUser(ctx, userID); err != nil {
			logger.Error("Failed to revoke sessions after self role change",
				zap.Error(err), zap.String("user_id", userID.String()))
		}
	})

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireShop(r, handler.Shop, repo, logger)
	wireProduct(r, handler.Product, repo, logger)
	wireReview(r, handler.Review, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
