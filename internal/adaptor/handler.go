package adaptor

import (
	"net/http"

	"vridhira/internal/usecase"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Shop    *ShopHandler
	Product *ProductHandler
	Review  *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, service.OTP, log),
		User:    NewUserHandler(service.User, log),
		Shop:    NewShopHandler(service.Shop, log),
		Product: NewProductHandler(service.Product, log),
		Review:  NewReviewHandler(service.Review, log),
	}
}

// handleServiceError maps structured error kinds to HTTP status codes.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindAuthorization:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
