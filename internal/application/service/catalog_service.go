package service

import (
	"context"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/google/uuid"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, lowStockThreshold int) *CatalogService {
	return &CatalogService{
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	Category     string
	Unit         string
	PricePerUnit float64
	CostPerUnit  *float64
	Stock        int
	Watts        *string
}

// CreateProduct creates a new catalog product
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	unit := enum.ProductUnit(input.Unit)
	if input.Unit == "" {
		unit = enum.ProductUnitPiece
	}
	if !unit.Valid() {
		return nil, apperror.NewValidationError("Invalid unit: must be piece, meter or pack")
	}
	if input.PricePerUnit < 0 {
		return nil, apperror.NewValidationError("Price per unit cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewValidationError("Stock cannot be negative")
	}

	product := &entity.Product{
		Name:     input.Name,
		Category: input.Category,
		Unit:     unit,
		Stock:    input.Stock,
		Watts:    input.Watts,
	}
	product.SetPriceFromDecimal(input.PricePerUnit)
	if input.CostPerUnit != nil {
		if *input.CostPerUnit < 0 {
			return nil, apperror.NewValidationError("Cost per unit cannot be negative")
		}
		product.SetCostFromDecimal(*input.CostPerUnit)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input; nil fields are left unchanged
type UpdateProductInput struct {
	Name         *string
	Category     *string
	Unit         *string
	PricePerUnit *float64
	CostPerUnit  *float64
	Watts        *string
}

// UpdateProduct updates product attributes. Stock is deliberately not
// updatable here; use AdjustStock so changes stay guarded.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		unit := enum.ProductUnit(*input.Unit)
		if !unit.Valid() {
			return nil, apperror.NewValidationError("Invalid unit: must be piece, meter or pack")
		}
		product.Unit = unit
	}
	if input.PricePerUnit != nil {
		if *input.PricePerUnit < 0 {
			return nil, apperror.NewValidationError("Price per unit cannot be negative")
		}
		product.SetPriceFromDecimal(*input.PricePerUnit)
	}
	if input.CostPerUnit != nil {
		if *input.CostPerUnit < 0 {
			return nil, apperror.NewValidationError("Cost per unit cannot be negative")
		}
		product.SetCostFromDecimal(*input.CostPerUnit)
	}
	if input.Watts != nil {
		product.Watts = input.Watts
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog products with filtering and pagination
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// DeleteProduct soft-deletes a product. Historical invoices keep their item
// snapshots, so deletion never rewrites a sale.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// AdjustStock applies a signed stock delta (restock or correction)
func (s *CatalogService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	if delta == 0 {
		return nil, apperror.NewValidationError("Stock delta cannot be zero")
	}

	_, ok, err := s.productRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, apperror.NewValidationError("Stock adjustment would make stock negative")
	}

	return s.productRepo.GetByID(ctx, id)
}

// GetLowStock returns products at or below the configured threshold
func (s *CatalogService) GetLowStock(ctx context.Context, threshold *int) ([]entity.Product, error) {
	t := s.lowStockThreshold
	if threshold != nil && *threshold >= 0 {
		t = *threshold
	}
	return s.productRepo.GetLowStock(ctx, t)
}
