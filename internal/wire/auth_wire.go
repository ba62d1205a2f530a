package wire

import (
	"vridhira/internal/adaptor"
	"vridhira/internal/data/repository"
	"vridhira/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures registration, login and OTP routes
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/otp/request", authHandler.SendOTP)
	r.Get("/api/otp/status", authHandler.OTPStatus)
	r.Post("/api/password-reset", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/logout", authHandler.Logout)
}
