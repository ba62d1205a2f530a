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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// CreateProduct handles POST /api/products (shopkeeper and above)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), sellerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// ListProducts handles GET /api/products?page=1&per_page=10
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	products, err := h.service.ListProducts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// ListByShop handles GET /api/shops/{id}/products
func (h *ProductHandler) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "id")
	if shopID == "" {
		utils.ResponseBadRequest(w, "Shop ID is required", nil)
		return
	}

	products, err := h.service.ListByShop(r.Context(), shopID)
	if err != nil {
		handleServiceError(w, h.log, err, "list shop products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}
