package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// PlaceOrderInput carries everything a customer submits at checkout.
type PlaceOrderInput struct {
	TableID       string
	CustomerID    string // empty for guest orders
	Items         []entity.OrderItem
	PaymentMethod entity.PaymentMethod
	RedeemPoints  bool
	Notes         string
}

// OrderView is a filtered dashboard view with its derived aggregates.
type OrderView struct {
	Orders []*entity.Order
	Stats  entity.OrderStats
}

// OrderSnapshot is one frame of the live dashboard stream. NewOrderIDs
// lists orders that appeared since the previous frame in the "new"
// status, so the consumer can ring the new-order chime.
type OrderSnapshot struct {
	Orders      []*entity.Order
	Stats       entity.OrderStats
	NewOrderIDs []string
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// PlaceOrder validates the cart, prices it, applies loyalty redemption
	// and settles the points ledger, then persists the order.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order for the confirmation screen.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// ListOrders returns the dashboard view filtered by status and date window.
	ListOrders(ctx context.Context, status string, window entity.DateWindow) (*OrderView, error)

	// ListCustomerOrders returns a customer's own order history.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*entity.Order, error)

	// AdvanceOrder moves an order one step forward in the pipeline.
	AdvanceOrder(ctx context.Context, id string) (*entity.Order, error)

	// UpdateOrderStatus sets an explicit status, rejecting anything that
	// is not the single-step successor of the current one.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// WatchOrders streams live dashboard snapshots until ctx is cancelled.
	WatchOrders(ctx context.Context) (<-chan *OrderSnapshot, error)
}
