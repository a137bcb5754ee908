package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Next_LinearPipeline(t *testing.T) {
	status := StatusNew

	next, ok := status.Next()
	require.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	next, ok = next.Next()
	require.True(t, ok)
	assert.Equal(t, StatusReady, next)

	next, ok = next.Next()
	require.True(t, ok)
	assert.Equal(t, StatusPaid, next)

	_, ok = next.Next()
	assert.False(t, ok, "paid must be terminal")
	assert.True(t, StatusPaid.IsTerminal())
}

func TestOrderStatus_NoBackwardTransitions(t *testing.T) {
	for from, to := range statusSuccessor {
		_, fromHasPredecessor := statusSuccessor[to]
		_ = fromHasPredecessor
		assert.NotEqual(t, from, to)
	}

	// every non-terminal status has exactly one successor
	assert.Len(t, statusSuccessor, 3)
}

func TestComputeSubtotal_ClampsQuantity(t *testing.T) {
	items := []OrderItem{
		{Price: 20, Quantity: 0},  // clamped to 1
		{Price: 15, Quantity: -3}, // clamped to 1
		{Price: 10, Quantity: 2},
	}

	assert.Equal(t, float64(55), ComputeSubtotal(items))
}

func TestOrderMath_Scenario(t *testing.T) {
	items := []OrderItem{
		{Price: 15, Quantity: 2},
		{Price: 35, Quantity: 1},
	}

	subtotal := ComputeSubtotal(items)
	assert.Equal(t, float64(65), subtotal)

	serviceFee := ComputeServiceFee(subtotal, 0.10)
	assert.Equal(t, float64(7), serviceFee)

	order := &Order{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Total:      subtotal + serviceFee,
	}
	assert.Equal(t, float64(72), order.Total)
	assert.True(t, order.CheckTotals())
}

func TestOrder_CheckTotals(t *testing.T) {
	order := &Order{Subtotal: 50, ServiceFee: 5, PointsDiscount: 12, Total: 43}
	assert.True(t, order.CheckTotals())

	order.Total = 44
	assert.False(t, order.CheckTotals())

	order = &Order{Subtotal: 50, ServiceFee: 5, PointsDiscount: -1, Total: 56}
	assert.False(t, order.CheckTotals(), "negative monetary fields are invalid")
}

func TestOrder_ShortCode(t *testing.T) {
	order := &Order{ID: "a1b2c3d4e5f6"}
	assert.Equal(t, "D4E5F6", order.ShortCode())

	order = &Order{ID: "ab12"}
	assert.Equal(t, "AB12", order.ShortCode())
}

func TestFilterOrders_StatusAndWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := []*Order{
		{ID: "1", Status: StatusNew, OrderedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Status: StatusPaid, OrderedAt: now.Add(-26 * time.Hour)},
		{ID: "3", Status: StatusNew, OrderedAt: now.Add(-6 * 24 * time.Hour)},
		{ID: "4", Status: StatusReady, OrderedAt: now.Add(-29 * 24 * time.Hour)},
		{ID: "5", Status: StatusNew, OrderedAt: now.Add(-40 * 24 * time.Hour)},
	}

	today := FilterOrders(orders, "all", WindowToday, now)
	require.Len(t, today, 1)
	assert.Equal(t, "1", today[0].ID)

	week := FilterOrders(orders, "new", WindowWeek, now)
	require.Len(t, week, 2)

	month := FilterOrders(orders, "all", WindowMonth, now)
	assert.Len(t, month, 4)

	all := FilterOrders(orders, "", WindowAll, now)
	assert.Len(t, all, 5)
}

func TestComputeStats_RecomputedFromView(t *testing.T) {
	orders := []*Order{
		{Total: 72},
		{Total: 43},
	}

	stats := ComputeStats(orders)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, float64(115), stats.TotalRevenue)

	assert.Equal(t, OrderStats{}, ComputeStats(nil))
}

func TestNewOrderIDs_DiffsSnapshots(t *testing.T) {
	prev := []*Order{
		{ID: "1", Status: StatusNew},
		{ID: "2", Status: StatusPreparing},
	}
	next := []*Order{
		{ID: "1", Status: StatusPreparing}, // advanced, not new
		{ID: "2", Status: StatusPreparing},
		{ID: "3", Status: StatusNew},  // fresh
		{ID: "4", Status: StatusPaid}, // fresh but not new
	}

	fresh := NewOrderIDs(prev, next)
	assert.Equal(t, []string{"3"}, fresh)

	assert.Empty(t, NewOrderIDs(next, next))
}

func TestPaymentMethod_OnlyCashEnabled(t *testing.T) {
	assert.True(t, PaymentCash.IsEnabled())
	assert.False(t, PaymentVisa.IsEnabled())
	assert.False(t, PaymentWallet.IsEnabled())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}
