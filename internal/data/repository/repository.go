package repository

import (
	"vridhira/pkg/storage"

	"go.uber.org/zap"
)

// Collection names inside the data directory.
const (
	usersCollection       = "users"
	shopsCollection       = "shops"
	productsCollection    = "products"
	reviewsCollection     = "reviews"
	otpAttemptsCollection = "otp_attempts"
	otpCodesCollection    = "otp_codes"
	sessionsCollection    = "sessions"
)

type Repository struct {
	User       UserRepository
	Shop       ShopRepository
	Product    ProductRepository
	Review     ReviewRepository
	OTPAttempt OTPAttemptRepository
	OTPCode    OTPCodeRepository
	Session    SessionRepository
}

func NewRepository(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(store, log),
		Shop:       NewShopRepository(store, log),
		Product:    NewProductRepository(store, log),
		Review:     NewReviewRepository(store, log),
		OTPAttempt: NewOTPAttemptRepository(store, log),
		OTPCode:    NewOTPCodeRepository(store, log),
		Session:    NewSessionRepository(store, log),
	}
}
