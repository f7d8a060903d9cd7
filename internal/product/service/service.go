// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns all products in insertion order.
	// Returns ErrNoProducts if there are none.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// SearchByName returns the first product whose name contains the query, ignoring case.
	// Returns ErrProductNotFound if nothing matches and ErrNoProducts if there are no products at all.
	SearchByName(ctx context.Context, query string) (*ProductDto, error)

	// Create adds a new product to the system.
	// Returns ErrInvalidProduct if the input fails validation.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update replaces all editable fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// service implements ProductService and provides methods to manage products.
type service struct {
	repository store.ProductStore
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore, logger *slog.Logger) ProductService {
	return &service{
		repository: repo,
		validate:   NewValidator(),
		logger:     logger.With("component", "service"),
	}
}

// NewValidator returns a validator that also understands the "brand" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("brand", func(fl validator.FieldLevel) bool {
		b, ok := fl.Field().Interface().(store.Brand)
		return ok && b.Valid()
	}); err != nil {
		panic(fmt.Sprintf("register brand validation: %v", err))
	}
	return v
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name  string      `json:"name"  validate:"required,max=100"`
	Brand store.Brand `json:"brand" validate:"required,brand"`
	Price float64     `json:"price" validate:"gt=0"`
	Stock int32       `json:"stock" validate:"gte=0"`
}

// ProductUpdateDto represents the data transfer object for replacing a product's fields.
type ProductUpdateDto struct {
	Name  string      `json:"name"  validate:"required,max=100"`
	Brand store.Brand `json:"brand" validate:"required,brand"`
	Price float64     `json:"price" validate:"gt=0"`
	Stock int32       `json:"stock" validate:"gte=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Price     float64   `json:"price"`
	Stock     int32     `json:"stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
func (s *service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	s.logger.DebugContext(ctx, "Products listed", "count", len(productDTOs))

	return productDTOs, nil
}

// SearchByName looks up the first product matching the query.
func (s *service) SearchByName(ctx context.Context, query string) (*ProductDto, error) {
	product, err := s.repository.SearchByName(query)
	if err != nil {
		s.logger.DebugContext(ctx, "Search found nothing", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search products by name %q: %w", query, err)
	}
	s.logger.DebugContext(ctx, "Search matched product", "query", query, "ID", product.ID)

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if err := s.validate.Struct(product); err != nil {
		s.logger.WarnContext(ctx, "Rejected invalid product", "error", err)
		return nil, fmt.Errorf("%w: %w", perrors.ErrInvalidProduct, err)
	}
	p, err := s.repository.Create(product.Name, product.Brand, product.Price, product.Stock)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error creating product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.InfoContext(ctx, "Product created", "ID", p.ID, "Name", p.Name)

	return toDto(p), nil
}

// Update modifies an existing product's details and returns the updated product as a ProductDto.
func (s *service) Update(ctx context.Context, id uuid.UUID, product ProductUpdateDto) (*ProductDto, error) {
	if err := s.validate.Struct(product); err != nil {
		s.logger.WarnContext(ctx, "Rejected invalid product update", "ID", id, "error", err)
		return nil, fmt.Errorf("%w: %w", perrors.ErrInvalidProduct, err)
	}
	updated, err := s.repository.Update(id, store.ProductUpdate{
		Name:  product.Name,
		Brand: product.Brand,
		Price: product.Price,
		Stock: product.Stock,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Product not updated", "ID", id, "error", err)
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product updated", "ID", updated.ID, "Name", updated.Name)

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteByID(id); err != nil {
		s.logger.WarnContext(ctx, "Product not deleted", "ID", id, "error", err)
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product deleted", "ID", id)
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:        product.ID.String(),
		Name:      product.Name,
		Brand:     product.Brand.String(),
		Price:     product.Price,
		Stock:     product.Stock,
		UpdatedAt: product.UpdatedAt,
	}
}
