package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

// NewMockCatalogRepository creates a new mock bound to the test lifecycle.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogRepository) CreateCategory(ctx context.Context, category *entity.Category) (string, error) {
	args := m.Called(ctx, category)

	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, product *entity.Product) (string, error) {
	args := m.Called(ctx, product)

	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockCatalogRepository) SetProductAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)

	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
