package repository

import (
	"context"
	"strings"
	"sync"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	FindByName(ctx context.Context, name string) (*entity.Shop, error)
	FindAll(ctx context.Context) ([]*entity.Shop, error)
}

type shopRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewShopRepository(store storage.Store, log *zap.Logger) ShopRepository {
	return &shopRepository{
		store: store,
		log:   log,
	}
}

func (sr *shopRepository) readAll(ctx context.Context) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	if err := sr.store.ReadAll(ctx, shopsCollection, &shops); err != nil {
		sr.log.Error("Failed to load shops collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load shops")
	}
	return shops, nil
}

// Create appends a new shop. Shop names are unique under case-insensitive
// comparison, checked under the collection lock.
func (sr *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	shops, err := sr.readAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range shops {
		if strings.EqualFold(existing.Name, shop.Name) {
			return apperr.Conflict("a shop named %q already exists", existing.Name)
		}
	}

	shops = append(shops, shop)
	if err := sr.store.WriteAll(ctx, shopsCollection, shops); err != nil {
		sr.log.Error("Failed to persist shops collection", zap.Error(err))
		return apperr.Storage(err, "failed to save shops")
	}

	return nil
}

func (sr *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shops, err := sr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, shop := range shops {
		if shop.ID == id {
			return shop, nil
		}
	}

	return nil, nil
}

func (sr *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	shops, err := sr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, shop := range shops {
		if shop.OwnerID == ownerID {
			return shop, nil
		}
	}

	return nil, nil
}

func (sr *shopRepository) FindByName(ctx context.Context, name string) (*entity.Shop, error) {
	shops, err := sr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, shop := range shops {
		if strings.EqualFold(shop.Name, name) {
			return shop, nil
		}
	}

	return nil, nil
}

func (sr *shopRepository) FindAll(ctx context.Context) ([]*entity.Shop, error) {
	return sr.readAll(ctx)
}
