package repository

import (
	"context"
	"sync"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context) (int64, error)
}

type productRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewProductRepository(store storage.Store, log *zap.Logger) ProductRepository {
	return &productRepository{
		store: store,
		log:   log,
	}
}

func (pr *productRepository) readAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := pr.store.ReadAll(ctx, productsCollection, &products); err != nil {
		pr.log.Error("Failed to load products collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load products")
	}
	return products, nil
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	products, err := pr.readAll(ctx)
	if err != nil {
		return err
	}

	products = append(products, product)
	if err := pr.store.WriteAll(ctx, productsCollection, products); err != nil {
		pr.log.Error("Failed to persist products collection", zap.Error(err))
		return apperr.Storage(err, "failed to save products")
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	products, err := pr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, nil
}

func (pr *productRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	products, err := pr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []*entity.Product
	for _, product := range products {
		if product.ShopID == shopID {
			result = append(result, product)
		}
	}

	return result, nil
}

func (pr *productRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	products, err := pr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= len(products) {
		return nil, nil
	}

	end := offset + limit
	if end > len(products) {
		end = len(products)
	}

	return products[offset:end], nil
}

func (pr *productRepository) CountAll(ctx context.Context) (int64, error) {
	products, err := pr.readAll(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}
