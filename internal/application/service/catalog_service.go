package service

import (
	"context"
	"strings"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/google/uuid"
)

// CreateProductInput holds product creation data
type CreateProductInput struct {
	Name        string
	Code        string
	Category    string
	Price       int64
	Stock       int
	StockAlert  int
	Description *string
	ImageURL    *string
}

// UpdateProductInput holds product update data. Nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *int64
	Stock       *int
	StockAlert  *int
	Description *string
	ImageURL    *string
}

// CatalogService manages the product catalog and its stock levels.
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// CreateProduct registers a new catalog entry. A missing code is generated.
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = utils.GenerateProductCode()
	} else {
		existing, err := s.productRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product code already in use")
		}
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Code:        code,
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Stock:       input.Stock,
		StockAlert:  input.StockAlert,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct fetches a single product by ID.
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

// UpdateProduct applies a partial update to a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.StockAlert != nil {
		product.StockAlert = *input.StockAlert
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product. History keeps its own snapshots, so
// past transactions are unaffected.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts returns a filtered, paginated catalog page.
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// ListCategories returns the distinct non-empty categories in the catalog.
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.ListCategories(ctx)
}
