package usecase

import (
	"vridhira/internal/data/repository"
	"vridhira/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Shop    ShopService
	Product ProductService
	Review  ReviewService
	OTP     OTPService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	otp := NewOTPService(repo.OTPAttempt, repo.OTPCode, config, log)

	return &Service{
		Auth:    NewAuthService(repo, otp, config, log),
		User:    NewUserService(repo.User, log),
		Shop:    NewShopService(repo.Shop, repo.User, log),
		Product: NewProductService(repo.Product, repo.Shop, log),
		Review:  NewReviewService(repo.Review, repo.Product, repo.User, log),
		OTP:     otp,
	}
}
