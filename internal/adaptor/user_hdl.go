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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetAllUsers handles GET /api/admin/users (admin and owner only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// ChangeRole handles PATCH /api/admin/users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.service.ChangeRole(r.Context(), actorID, targetID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "change role")
		return
	}

	utils.ResponseSuccess(w, "Role updated successfully", updated)
}
