package adaptor

import (
	"encoding/json"
	"net/http"

	"vridhira/internal/dto/request"
	"vridhira/internal/usecase"
	"vridhira/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log,
	}
}

// CreateShop handles POST /api/shops (vendor onboarding)
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	shop, err := h.service.CreateShop(r.Context(), ownerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create shop")
		return
	}

	utils.ResponseCreated(w, "Shop created successfully", shop)
}

// GetShop handles GET /api/shops/{id}
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if shopID == "" {
		utils.ResponseBadRequest(w, "Shop ID is required", nil)
		return
	}

	shop, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		handleServiceError(w, h.log, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved successfully", shop)
}

// GetMyShop handles GET /api/user/shop
func (h *ShopHandler) GetMyShop(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	shop, err := h.service.GetShopByOwner(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get own shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved successfully", shop)
}

// ListShops handles GET /api/shops
func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved successfully", shops)
}
