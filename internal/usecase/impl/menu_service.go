package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewMenuService creates a new menu service instance
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetMenu builds the customer-facing menu: visible categories in display
// order, each with its available products. Hidden categories and
// unavailable products never leave the kitchen.
func (s *menuService) GetMenu(ctx context.Context) ([]*usecase.MenuSection, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	byCategory := make(map[string][]*entity.Product, len(categories))
	for _, p := range products {
		if !p.Available {
			continue
		}
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	sections := make([]*usecase.MenuSection, 0, len(categories))
	for _, c := range categories {
		if !c.Visible {
			continue
		}
		sections = append(sections, &usecase.MenuSection{
			Category: c,
			Products: byCategory[c.ID],
		})
	}

	return sections, nil
}

// ListCategories retrieves all categories for the management screen.
func (s *menuService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a menu group. A zero display rank appends the
// category to the end of the current ordering.
func (s *menuService) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if category.Name.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	if category.DisplayOrder <= 0 {
		existing, err := s.catalogRepo.ListCategories(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve display order")
		}

		maxOrder := 0
		for _, c := range existing {
			if c.DisplayOrder > maxOrder {
				maxOrder = c.DisplayOrder
			}
		}
		category.DisplayOrder = maxOrder + 1
	}

	id, err := s.catalogRepo.CreateCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	category.ID = id

	return category, nil
}

// UpdateCategory edits a menu group.
func (s *menuService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if err := s.catalogRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

// DeleteCategory removes a menu group. Products keep their dangling
// category reference and simply drop off the customer menu.
func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.catalogRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	s.log(ctx).Info("category deleted", slog.String("category_id", id))

	return nil
}

// ListProducts retrieves all products for the management screen.
func (s *menuService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves one product.
func (s *menuService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a menu item.
func (s *menuService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product.Name.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if product.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if err := s.checkCategoryRef(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	id, err := s.catalogRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	product.ID = id

	return product, nil
}

// UpdateProduct edits a menu item.
func (s *menuService) UpdateProduct(ctx context.Context, product *entity.Product) error {
	if product.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if err := s.checkCategoryRef(ctx, product.CategoryID); err != nil {
		return err
	}

	if err := s.catalogRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// SetAvailability toggles whether a product can be ordered.
func (s *menuService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.catalogRepo.SetProductAvailability(ctx, id, available); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to set product availability")
	}

	return nil
}

// DeleteProduct removes a menu item permanently. Past orders keep their
// denormalized copy of the product.
func (s *menuService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	s.log(ctx).Info("product deleted", slog.String("product_id", id))

	return nil
}

// checkCategoryRef verifies a non-empty category reference points at an
// existing category before a product write.
func (s *menuService) checkCategoryRef(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}

	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check category reference")
	}

	for _, c := range categories {
		if c.ID == categoryID {
			return nil
		}
	}

	return domainerrors.ErrCategoryNotFound
}
