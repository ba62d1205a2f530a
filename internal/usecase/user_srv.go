package usecase

import (
	"context"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/request"
	"vridhira/internal/dto/response"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleChangedFunc is notified after a successful role change. selfChange is
// true when the actor changed their own role, which should force the actor
// to re-authenticate.
type RoleChangedFunc func(ctx context.Context, userID uuid.UUID, selfChange bool)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	ChangeRole(ctx context.Context, actorID uuid.UUID, targetID string, req *request.ChangeRoleRequest) (*response.UserResponse, error)
	OnRoleChanged(fn RoleChangedFunc)
}

type userService struct {
	userRepo    repository.UserRepository
	log         *zap.Logger
	subscribers []RoleChangedFunc
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, apperr.Validation("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, err
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, err
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// ChangeRole applies the role hierarchy rules: owners may manage anyone,
// admins only identities currently below admin, and handing out the admin
// role itself takes an owner. Nobody is promoted to owner through here.
func (us *userService) ChangeRole(ctx context.Context, actorID uuid.UUID, targetID string, req *request.ChangeRoleRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Change role validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(targetID)
	if err != nil {
		return nil, apperr.Validation("invalid user ID")
	}
	newRole := entity.UserRole(req.Role)

	// 2. Load actor, the decision runs against their current stored role
	actor, err := us.userRepo.FindByID(ctx, actorID)
	if err != nil {
		us.log.Error("Failed to load actor", zap.Error(err), zap.String("actor_id", actorID.String()))
		return nil, err
	}
	if actor == nil {
		return nil, apperr.Authorization("acting account no longer exists")
	}

	// 3. Load target
	target, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to load target user", zap.Error(err), zap.String("target_id", targetID))
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("user %s not found", targetID)
	}

	// 4. Who may act on whom
	if !actor.Role.CanChangeTarget(target.Role) {
		us.log.Warn("Role change rejected: actor may not manage target",
			zap.String("actor_role", string(actor.Role)),
			zap.String("target_role", string(target.Role)),
		)
		return nil, apperr.Authorization("role %s may not change the role of a %s account", actor.Role, target.Role)
	}

	// 5. Who may assign what
	if !actor.Role.CanAssignRole(newRole) {
		us.log.Warn("Role change rejected: actor may not assign role",
			zap.String("actor_role", string(actor.Role)),
			zap.String("new_role", string(newRole)),
		)
		return nil, apperr.Authorization("role %s may not assign the %s role", actor.Role, newRole)
	}

	// 6. Persist
	updated, err := us.userRepo.UpdateRole(ctx, id, newRole)
	if err != nil {
		us.log.Error("Failed to update role", zap.Error(err), zap.String("target_id", targetID))
		return nil, err
	}

	us.log.Info("Role changed",
		zap.String("actor_id", actorID.String()),
		zap.String("target_id", targetID),
		zap.String("new_role", string(newRole)),
	)

	// 7. Notify subscribers, the session layer revokes on self-change
	for _, fn := range us.subscribers {
		fn(ctx, updated.ID, actorID == updated.ID)
	}

	resp := response.UserToResponse(updated)
	return &resp, nil
}

func (us *userService) OnRoleChanged(fn RoleChangedFunc) {
	us.subscribers = append(us.subscribers, fn)
}
