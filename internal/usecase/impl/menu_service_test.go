package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	mockRepo "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

func newMenuService(t *testing.T) (usecase.MenuUsecase, *mockRepo.MockCatalogRepository) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewMenuService(MenuServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      newTestLogger(),
	})

	return service, catalogRepo
}

func TestMenuService_GetMenu_HidesInvisibleAndUnavailable(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	catalogRepo.On("ListCategories", ctx).Return([]*entity.Category{
		{ID: "hot", Name: entity.LocalizedText{AR: "مشروبات ساخنة"}, Visible: true, DisplayOrder: 1},
		{ID: "hidden", Name: entity.LocalizedText{AR: "مخفي"}, Visible: false, DisplayOrder: 2},
	}, nil)
	catalogRepo.On("ListProducts", ctx).Return([]*entity.Product{
		{ID: "espresso", CategoryID: "hot", Available: true},
		{ID: "out-of-stock", CategoryID: "hot", Available: false},
		{ID: "in-hidden", CategoryID: "hidden", Available: true},
	}, nil)

	sections, err := service.GetMenu(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "hot", sections[0].Category.ID)
	require.Len(t, sections[0].Products, 1)
	assert.Equal(t, "espresso", sections[0].Products[0].ID)
}

func TestMenuService_CreateProduct_Validation(t *testing.T) {
	service, _ := newMenuService(t)
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, &entity.Product{Price: 10})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateProduct(ctx, &entity.Product{
		Name:  entity.LocalizedText{AR: "قهوة"},
		Price: -5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_CreateProduct(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	product := &entity.Product{Name: entity.LocalizedText{AR: "قهوة", EN: "Coffee"}, Price: 25, Available: true}
	catalogRepo.On("CreateProduct", ctx, product).Return("p1", nil)

	created, err := service.CreateProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
}

func TestMenuService_CreateProduct_UnknownCategory(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	catalogRepo.On("ListCategories", ctx).Return([]*entity.Category{
		{ID: "hot", Visible: true, DisplayOrder: 1},
	}, nil)

	_, err := service.CreateProduct(ctx, &entity.Product{
		Name:       entity.LocalizedText{AR: "قهوة"},
		Price:      25,
		CategoryID: "no-such-category",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestMenuService_CreateCategory_AppendsDisplayOrder(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	catalogRepo.On("ListCategories", ctx).Return([]*entity.Category{
		{ID: "hot", DisplayOrder: 1},
		{ID: "cold", DisplayOrder: 4},
	}, nil)
	catalogRepo.On("CreateCategory", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.DisplayOrder == 5
	})).Return("desserts", nil)

	created, err := service.CreateCategory(ctx, &entity.Category{
		Name: entity.LocalizedText{AR: "حلويات"},
	})
	require.NoError(t, err)
	assert.Equal(t, "desserts", created.ID)
	assert.Equal(t, 5, created.DisplayOrder)
}

func TestMenuService_SetAvailability_NotFound(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	catalogRepo.On("SetProductAvailability", ctx, "missing", false).
		Return(repository.ErrProductNotFound)

	err := service.SetAvailability(ctx, "missing", false)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestMenuService_DeleteCategory_NotFound(t *testing.T) {
	service, catalogRepo := newMenuService(t)
	ctx := context.Background()

	catalogRepo.On("DeleteCategory", ctx, "missing").Return(repository.ErrCategoryNotFound)

	err := service.DeleteCategory(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
