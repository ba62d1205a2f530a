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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// AddReview handles POST /api/reviews
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	authorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.AddReview(r.Context(), authorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review added successfully", review)
}

// ListByProduct handles GET /api/products/{id}/reviews
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	reviews, err := h.service.ListByProduct(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// ProductStats handles GET /api/products/{id}/reviews/stats
func (h *ReviewHandler) ProductStats(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	stats, err := h.service.ProductStats(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review stats")
		return
	}

	utils.ResponseSuccess(w, "Review stats retrieved successfully", stats)
}
