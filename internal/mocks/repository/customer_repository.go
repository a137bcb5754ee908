package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a new mock bound to the test lifecycle.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) (string, error) {
	args := m.Called(ctx, customer)

	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, tenantID, phone string) (*entity.Customer, error) {
	args := m.Called(ctx, tenantID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, tenantID string) ([]*entity.Customer, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) IncrementPoints(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)

	return args.Error(0)
}

func (m *MockCustomerRepository) RecordOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
