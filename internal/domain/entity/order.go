package entity

import (
	"math"
	"strings"
	"time"
)

// OrderStatus represents where an order sits in the kitchen pipeline.
type OrderStatus string

const (
	// StatusNew indicates an order just submitted by a customer.
	StatusNew OrderStatus = "new"
	// StatusPreparing indicates the kitchen has picked the order up.
	StatusPreparing OrderStatus = "preparing"
	// StatusReady indicates the order is ready to be served.
	StatusReady OrderStatus = "ready"
	// StatusPaid indicates the order was served and settled. Terminal.
	StatusPaid OrderStatus = "paid"
)

// statusSuccessor is the fixed transition map of the lifecycle.
// The pipeline is linear: no skipping, no backward transition, no cancel.
var statusSuccessor = map[OrderStatus]OrderStatus{
	StatusNew:       StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusPaid,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusPaid:
		return true
	default:
		return false
	}
}

// Next returns the unique successor status. ok is false for the
// terminal status, where advancing is a no-op.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := statusSuccessor[s]

	return next, ok
}

// IsTerminal reports whether the status has no successor.
func (s OrderStatus) IsTerminal() bool {
	_, ok := statusSuccessor[s]

	return !ok
}

// PaymentMethod is the label recorded on an order. No real transaction
// is processed; only cash is currently activatable.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentVisa   PaymentMethod = "visa"
	PaymentWallet PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentVisa, PaymentWallet:
		return true
	default:
		return false
	}
}

// IsEnabled reports whether the method can actually be selected at
// checkout. Card and wallet stay visible but disabled until wired to a
// real payment provider.
func (m PaymentMethod) IsEnabled() bool {
	return m == PaymentCash
}

// OrderItem is a denormalized line item. Product data is copied onto the
// order at submit time so later catalog edits never rewrite history.
type OrderItem struct {
	ProductID string        `json:"productId" firestore:"productId"`
	Name      LocalizedText `json:"name" firestore:"name"`
	Price     float64       `json:"price" firestore:"price"`
	Quantity  int           `json:"quantity" firestore:"quantity"`
	Image     string        `json:"image,omitempty" firestore:"image,omitempty"`
	Category  string        `json:"category,omitempty" firestore:"category,omitempty"`
}

// LineTotal returns price times the clamped quantity.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(clampQuantity(i.Quantity))
}

// clampQuantity enforces the quantity >= 1 invariant.
func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}

	return q
}

// Order is a customer's submitted order, created once by the customer
// flow and mutated only by staff status updates. Orders are never deleted.
type Order struct {
	ID             string        `json:"id" firestore:"-"`
	TenantID       string        `json:"cafe_id" firestore:"cafe_id"`
	TableID        string        `json:"tableId" firestore:"tableId"`
	CustomerID     string        `json:"customerId,omitempty" firestore:"customerId,omitempty"` // empty for guest orders
	CustomerName   string        `json:"customerName" firestore:"customerName"`
	CustomerPhone  string        `json:"customerPhone,omitempty" firestore:"customerPhone,omitempty"`
	Items          []OrderItem   `json:"items" firestore:"items"`
	Subtotal       float64       `json:"subtotal" firestore:"subtotal"`
	ServiceFee     float64       `json:"serviceFee" firestore:"serviceFee"`
	PointsDiscount float64       `json:"pointsDiscount" firestore:"pointsDiscount"`
	PointsUsed     int           `json:"pointsUsed" firestore:"pointsUsed"`
	PointsEarned   int           `json:"pointsEarned" firestore:"pointsEarned"`
	Total          float64       `json:"total" firestore:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod" firestore:"paymentMethod"`
	Status         OrderStatus   `json:"status" firestore:"status"`
	Notes          string        `json:"notes,omitempty" firestore:"notes,omitempty"`
	OrderedAt      time.Time     `json:"orderedAt" firestore:"-"` // resolved from createdAt server timestamp
	CreatedAt      time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt      time.Time     `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// ShortCode is the human-friendly order reference shown on the
// confirmation screen: the last six characters of the ID, uppercased.
func (o *Order) ShortCode() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}

	return strings.ToUpper(id)
}

// ComputeSubtotal sums the line totals with quantities clamped to >= 1.
func ComputeSubtotal(items []OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}

	return sum
}

// ComputeServiceFee charges feeRate of the subtotal, rounded to the
// nearest whole currency unit.
func ComputeServiceFee(subtotal, feeRate float64) float64 {
	return math.Round(subtotal * feeRate)
}

// CheckTotals verifies the write-time monetary invariant:
// total = subtotal + serviceFee - pointsDiscount, all fields non-negative.
func (o *Order) CheckTotals() bool {
	if o.Subtotal < 0 || o.ServiceFee < 0 || o.PointsDiscount < 0 || o.Total < 0 {
		return false
	}

	return o.Total == o.Subtotal+o.ServiceFee-o.PointsDiscount
}

// OrderStats are aggregates derived from a filtered order view. They are
// recomputed on every filter change and never persisted.
type OrderStats struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ComputeStats derives the aggregates from the given view.
func ComputeStats(orders []*Order) OrderStats {
	stats := OrderStats{TotalOrders: len(orders)}
	for _, o := range orders {
		stats.TotalRevenue += o.Total
	}

	return stats
}

// DateWindow is a read-only date filter relative to "now".
type DateWindow string

const (
	WindowAll   DateWindow = "all"
	WindowToday DateWindow = "today"
	WindowWeek  DateWindow = "week"  // last 7 days inclusive
	WindowMonth DateWindow = "month" // last 30 days inclusive
)

// IsValid checks if the DateWindow is a known value.
func (w DateWindow) IsValid() bool {
	switch w {
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return true
	default:
		return false
	}
}

// Contains reports whether t falls inside the window relative to now.
func (w DateWindow) Contains(t, now time.Time) bool {
	switch w {
	case WindowToday:
		y1, m1, d1 := t.Date()
		y2, m2, d2 := now.Date()

		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowWeek:
		return !t.Before(now.Add(-7 * 24 * time.Hour))
	case WindowMonth:
		return !t.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}

// FilterOrders returns the view matching the status filter (empty or
// "all" matches everything) and the date window. Pure; never mutates.
func FilterOrders(orders []*Order, status string, window DateWindow, now time.Time) []*Order {
	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != "all" && o.Status.String() != status {
			continue
		}
		if !window.Contains(o.OrderedAt, now) {
			continue
		}
		filtered = append(filtered, o)
	}

	return filtered
}

// NewOrderIDs diffs two snapshots and returns the IDs present in next
// but not in prev that are still in the "new" status. Consumers use the
// result to drive the new-order notification; the subscription itself
// stays side-effect free.
func NewOrderIDs(prev, next []*Order) []string {
	seen := make(map[string]struct{}, len(prev))
	for _, o := range prev {
		seen[o.ID] = struct{}{}
	}

	var fresh []string
	for _, o := range next {
		if o.Status != StatusNew {
			continue
		}
		if _, ok := seen[o.ID]; ok {
			continue
		}
		fresh = append(fresh, o.ID)
	}

	return fresh
}
