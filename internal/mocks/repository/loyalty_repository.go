package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MockLoyaltyRepository is a mock implementation of repository.LoyaltyRepository.
type MockLoyaltyRepository struct {
	mock.Mock
}

// NewMockLoyaltyRepository creates a new mock bound to the test lifecycle.
func NewMockLoyaltyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoyaltyRepository {
	m := &MockLoyaltyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLoyaltyRepository) GetSettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.LoyaltySettings), args.Error(1)
}

func (m *MockLoyaltyRepository) SaveSettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	args := m.Called(ctx, settings)

	return args.Error(0)
}
