package usecase

import (
	"context"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/request"
	"vridhira/internal/dto/response"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShopService interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, req *request.CreateShopRequest) (*response.ShopResponse, error)
	GetShop(ctx context.Context, shopID string) (*response.ShopResponse, error)
	GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*response.ShopResponse, error)
	ListShops(ctx context.Context) ([]response.ShopResponse, error)
}

type shopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewShopService(shopRepo repository.ShopRepository, userRepo repository.UserRepository, log *zap.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
		log:      log,
	}
}

// CreateShop onboards a vendor. The shop write and the role promotion are
// two independent writes with no rollback, a failed promotion leaves the
// shop in place.
func (s *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, req *request.CreateShopRequest) (*response.ShopResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create shop validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Owner must exist
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to load shop owner", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("owner account not found")
	}

	// 3. Shop names are unique, case-insensitive
	existing, err := s.shopRepo.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check shop name", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("a shop named %q already exists", existing.Name)
	}

	// 4. Create shop. The repository re-checks the name under its lock.
	shop := &entity.Shop{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		OwnerID:  ownerID,
		Name:     req.Name,
		Category: req.Category,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		s.log.Error("Failed to create shop", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	// 5. Promote a plain user to shopkeeper
	if owner.Role == entity.RoleUser {
		if _, err := s.userRepo.UpdateRole(ctx, ownerID, entity.RoleShopkeeper); err != nil {
			s.log.Error("Failed to promote shop owner",
				zap.Error(err), zap.String("owner_id", ownerID.String()))
			// Shop already exists, surface the error without rolling back
			return nil, err
		}
	}

	s.log.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("name", shop.Name),
	)

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) GetShop(ctx context.Context, shopID string) (*response.ShopResponse, error) {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, apperr.Validation("invalid shop ID")
	}

	shop, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find shop", zap.Error(err), zap.String("shop_id", shopID))
		return nil, err
	}
	if shop == nil {
		return nil, apperr.NotFound("shop not found")
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*response.ShopResponse, error) {
	shop, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find shop by owner", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, err
	}
	if shop == nil {
		return nil, apperr.NotFound("no shop for this account")
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) ListShops(ctx context.Context) ([]response.ShopResponse, error) {
	shops, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list shops", zap.Error(err))
		return nil, err
	}

	result := make([]response.ShopResponse, len(shops))
	for i, shop := range shops {
		result[i] = response.ShopToResponse(shop)
	}

	return result, nil
}
