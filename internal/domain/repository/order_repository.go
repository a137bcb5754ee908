// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the standard operations for order persistence.
// The application layer will depend on this interface, not the concrete implementation.
type OrderRepository interface {
	// Create persists a new order and returns its generated document ID.
	Create(ctx context.Context, order *entity.Order) (string, error)

	// FindByID retrieves a single order by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByTenant retrieves all orders for a cafe, newest first.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Order, error)

	// ListByCustomer retrieves all orders placed by a customer, newest first.
	ListByCustomer(ctx context.Context, tenantID, customerID string) ([]*entity.Order, error)

	// UpdateStatus sets the order status and refreshes the update timestamp.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// Watch streams full snapshots of a cafe's orders whenever any document
	// changes. The returned channel is closed when ctx is cancelled or the
	// underlying listener fails.
	Watch(ctx context.Context, tenantID string) (<-chan []*entity.Order, error)
}
