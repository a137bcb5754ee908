package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MenuSection is one customer-facing menu group: a visible category with
// its orderable products.
type MenuSection struct {
	Category *entity.Category
	Products []*entity.Product
}

// MenuUsecase defines the interface for menu catalog use cases
type MenuUsecase interface {
	// GetMenu builds the customer-facing menu: visible categories in
	// display order, each with its available products.
	GetMenu(ctx context.Context) ([]*MenuSection, error)

	// ListCategories retrieves all categories for the management screen.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a menu group.
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// UpdateCategory edits a menu group.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a menu group and orphans its products.
	DeleteCategory(ctx context.Context, id string) error

	// ListProducts retrieves all products for the management screen.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves one product.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct adds a menu item.
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// UpdateProduct edits a menu item.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// SetAvailability toggles whether a product can be ordered.
	SetAvailability(ctx context.Context, id string, available bool) error

	// DeleteProduct removes a menu item permanently.
	DeleteProduct(ctx context.Context, id string) error
}
