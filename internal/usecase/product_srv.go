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

type ProductService interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error)
	ListProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	ListByShop(ctx context.Context, shopID string) ([]response.ProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, shopRepo repository.ShopRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		log:         log,
	}
}

// CreateProduct lists a product under the seller's own shop.
func (ps *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The seller must have a shop
	shop, err := ps.shopRepo.FindByOwner(ctx, sellerID)
	if err != nil {
		ps.log.Error("Failed to find seller shop", zap.Error(err), zap.String("seller_id", sellerID.String()))
		return nil, err
	}
	if shop == nil {
		return nil, apperr.Authorization("a shop is required before listing products")
	}

	// 3. Create product
	product := &entity.Product{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}

	if err := ps.productRepo.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	ps.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("shop_id", shop.ID.String()),
		zap.String("name", product.Name),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperr.Validation("invalid product ID")
	}

	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) ListProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	products, err := ps.productRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		ps.log.Error("Failed to list products", zap.Error(err))
		return nil, err
	}

	total, err := ps.productRepo.CountAll(ctx)
	if err != nil {
		ps.log.Error("Failed to count products", zap.Error(err))
		return nil, err
	}

	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = response.ProductToResponse(product)
	}

	return response.NewPaginatedResponse(productResponses, req.Page, req.PerPage, total), nil
}

func (ps *productService) ListByShop(ctx context.Context, shopID string) ([]response.ProductResponse, error) {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, apperr.Validation("invalid shop ID")
	}

	shop, err := ps.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.NotFound("shop not found")
	}

	products, err := ps.productRepo.FindByShop(ctx, id)
	if err != nil {
		ps.log.Error("Failed to list shop products", zap.Error(err), zap.String("shop_id", shopID))
		return nil, err
	}

	result := make([]response.ProductResponse, len(products))
	for i, product := range products {
		result[i] = response.ProductToResponse(product)
	}

	return result, nil
}
