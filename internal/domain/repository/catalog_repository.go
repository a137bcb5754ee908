package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the interface for menu catalog storage operations.
// Categories and products live in separate collections but are always managed together.
type CatalogRepository interface {
	// CreateCategory persists a new category and returns its generated document ID.
	CreateCategory(ctx context.Context, category *entity.Category) (string, error)

	// ListCategories retrieves all categories ordered by display position.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory overwrites the mutable fields of a category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category permanently.
	DeleteCategory(ctx context.Context, id string) error

	// CreateProduct persists a new product and returns its generated document ID.
	CreateProduct(ctx context.Context, product *entity.Product) (string, error)

	// FindProductByID retrieves a product by its document ID.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByCategory retrieves products belonging to one category.
	ListProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// UpdateProduct overwrites the mutable fields of a product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// SetProductAvailability toggles whether a product can be ordered.
	SetProductAvailability(ctx context.Context, id string, available bool) error

	// DeleteProduct removes a product permanently.
	DeleteProduct(ctx context.Context, id string) error
}
