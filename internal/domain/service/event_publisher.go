package service

import (
	"context"
)

// Event types emitted on the order stream.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent represents an order lifecycle change published for async consumers
// such as the kitchen display and receipt printers.
type OrderEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	Type       string  `json:"type"`
	OrderID    string  `json:"order_id"`
	TenantID   string  `json:"cafe_id"`
	TableID    string  `json:"table_id"`
	CustomerID string  `json:"customer_id,omitempty"`
	Status     string  `json:"status"`
	Total      float64 `json:"total,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
