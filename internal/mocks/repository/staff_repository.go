package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// MockStaffRepository is a mock implementation of repository.StaffRepository.
type MockStaffRepository struct {
	mock.Mock
}

// NewMockStaffRepository creates a new mock bound to the test lifecycle.
func NewMockStaffRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffRepository) Create(ctx context.Context, account *entity.StaffAccount) (string, error) {
	args := m.Called(ctx, account)

	return args.String(0), args.Error(1)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id string) (*entity.StaffAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindByUsername(ctx context.Context, username string) (*entity.StaffAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]*entity.StaffAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, account *entity.StaffAccount) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockStaffRepository) UpdatePermissions(ctx context.Context, id string, permissions entity.Permissions) error {
	args := m.Called(ctx, id, permissions)

	return args.Error(0)
}

func (m *MockStaffRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)

	return args.Error(0)
}

func (m *MockStaffRepository) RecordLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
