package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MockBannerRepository is a mock implementation of repository.BannerRepository.
type MockBannerRepository struct {
	mock.Mock
}

// NewMockBannerRepository creates a new mock bound to the test lifecycle.
func NewMockBannerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBannerRepository {
	m := &MockBannerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBannerRepository) Create(ctx context.Context, banner *entity.Banner) (string, error) {
	args := m.Called(ctx, banner)

	return args.String(0), args.Error(1)
}

func (m *MockBannerRepository) FindByID(ctx context.Context, id string) (*entity.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Banner), args.Error(1)
}

func (m *MockBannerRepository) List(ctx context.Context) ([]*entity.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Banner), args.Error(1)
}

func (m *MockBannerRepository) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Banner), args.Error(1)
}

func (m *MockBannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	args := m.Called(ctx, banner)

	return args.Error(0)
}

func (m *MockBannerRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)

	return args.Error(0)
}

func (m *MockBannerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
