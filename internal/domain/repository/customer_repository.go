package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicatePhone is returned when the phone number is already registered.
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// CustomerRepository defines the interface for customer-related storage operations.
type CustomerRepository interface {
	// Create persists a new customer and returns its generated document ID.
	Create(ctx context.Context, customer *entity.Customer) (string, error)

	// FindByID retrieves a single customer by their document ID.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)

	// FindByPhone retrieves a customer by phone number within a cafe.
	FindByPhone(ctx context.Context, tenantID, phone string) (*entity.Customer, error)

	// List retrieves all customers for a cafe.
	List(ctx context.Context, tenantID string) ([]*entity.Customer, error)

	// IncrementPoints atomically adjusts the loyalty balance by delta,
	// which may be negative for redemptions.
	IncrementPoints(ctx context.Context, id string, delta int) error

	// RecordOrder atomically bumps the order counter and the last visit time.
	RecordOrder(ctx context.Context, id string) error
}
