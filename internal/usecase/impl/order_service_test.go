package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	mockRepo "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/repository"
	mockSvc "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

type orderServiceMocks struct {
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	loyaltyRepo  *mockRepo.MockLoyaltyRepository
	publisher    *mockSvc.MockEventPublisher
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	m := &orderServiceMocks{
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		loyaltyRepo:  mockRepo.NewMockLoyaltyRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	service := NewOrderService(OrderServiceParams{
		OrderRepo:    m.orderRepo,
		CustomerRepo: m.customerRepo,
		LoyaltyRepo:  m.loyaltyRepo,
		Publisher:    m.publisher,
		Config:       newTestConfig(),
		Logger:       newTestLogger(),
	})

	return service, m
}

func defaultSettingsPtr() *entity.LoyaltySettings {
	settings := entity.DefaultLoyaltySettings()

	return &settings
}

func TestOrderService_PlaceOrder_Guest(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return("a1b2c3d4e5f6", nil)
	m.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID: "5",
		Items: []entity.OrderItem{
			{ProductID: "p1", Price: 15, Quantity: 2},
			{ProductID: "p2", Price: 35, Quantity: 1},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "cafe_001", order.TenantID)
	assert.Equal(t, entity.GuestName, order.CustomerName)
	assert.Equal(t, float64(65), order.Subtotal)
	assert.Equal(t, float64(7), order.ServiceFee)
	assert.Equal(t, float64(72), order.Total)
	assert.Equal(t, entity.StatusNew, order.Status)
	assert.Equal(t, 0, order.PointsEarned, "guests earn no points")
	assert.Equal(t, "D4E5F6", order.ShortCode())
}

func TestOrderService_PlaceOrder_WithRedemption(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: "cust1", Name: "أحمد", Phone: "0101234567", LoyaltyPoints: 120}

	m.loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)
	m.customerRepo.On("FindByID", ctx, "cust1").Return(customer, nil)
	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return("order1", nil)
	// total 43 earns 4 points; 120 were spent on the discount
	m.customerRepo.On("IncrementPoints", ctx, "cust1", -116).Return(nil)
	m.customerRepo.On("RecordOrder", ctx, "cust1").Return(nil)
	m.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID:       "12",
		CustomerID:    "cust1",
		Items:         []entity.OrderItem{{ProductID: "p1", Price: 25, Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
		RedeemPoints:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "أحمد", order.CustomerName)
	assert.Equal(t, float64(50), order.Subtotal)
	assert.Equal(t, float64(5), order.ServiceFee)
	assert.Equal(t, float64(12), order.PointsDiscount)
	assert.Equal(t, 120, order.PointsUsed)
	assert.Equal(t, 4, order.PointsEarned)
	assert.Equal(t, float64(43), order.Total)
	assert.True(t, order.CheckTotals())
}

func TestOrderService_PlaceOrder_RedeemBelowFloor(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: "cust1", LoyaltyPoints: 30}

	m.loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)
	m.customerRepo.On("FindByID", ctx, "cust1").Return(customer, nil)

	_, err := service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID:       "3",
		CustomerID:    "cust1",
		Items:         []entity.OrderItem{{ProductID: "p1", Price: 25, Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
		RedeemPoints:  true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	service, _ := newOrderService(t)
	ctx := context.Background()
	items := []entity.OrderItem{{ProductID: "p1", Price: 10, Quantity: 1}}

	_, err := service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID: "1000", Items: items, PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTableNumber)

	_, err = service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID: "5", PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderEmpty)

	_, err = service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		TableID: "5", Items: items, PaymentMethod: entity.PaymentVisa,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodDisabled)
}

func TestOrderService_UpdateOrderStatus_SingleStep(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("FindByID", ctx, "order1").
		Return(&entity.Order{ID: "order1", Status: entity.StatusNew}, nil)
	m.orderRepo.On("UpdateStatus", ctx, "order1", entity.StatusPreparing).Return(nil)
	m.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := service.UpdateOrderStatus(ctx, "order1", entity.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, order.Status)
}

func TestOrderService_UpdateOrderStatus_RejectsSkip(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("FindByID", ctx, "order1").
		Return(&entity.Order{ID: "order1", Status: entity.StatusNew}, nil)

	_, err := service.UpdateOrderStatus(ctx, "order1", entity.StatusReady)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateOrderStatus_TerminalOrder(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("FindByID", ctx, "order1").
		Return(&entity.Order{ID: "order1", Status: entity.StatusPaid}, nil)

	_, err := service.UpdateOrderStatus(ctx, "order1", entity.StatusNew)
	assert.ErrorIs(t, err, domainerrors.ErrOrderTerminal)
}

func TestOrderService_AdvanceOrder(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("FindByID", ctx, "order1").
		Return(&entity.Order{ID: "order1", Status: entity.StatusReady}, nil)
	m.orderRepo.On("UpdateStatus", ctx, "order1", entity.StatusPaid).Return(nil)
	m.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := service.AdvanceOrder(ctx, "order1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, order.Status)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_FilterValidation(t *testing.T) {
	service, _ := newOrderService(t)
	ctx := context.Background()

	_, err := service.ListOrders(ctx, "burnt", entity.WindowAll)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.ListOrders(ctx, "all", entity.DateWindow("fortnight"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ListOrders_DerivesStats(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.On("ListByTenant", ctx, "cafe_001").Return([]*entity.Order{
		{ID: "1", Status: entity.StatusNew, Total: 72},
		{ID: "2", Status: entity.StatusPaid, Total: 43},
	}, nil)

	view, err := service.ListOrders(ctx, "new", entity.WindowAll)
	require.NoError(t, err)
	require.Len(t, view.Orders, 1)
	assert.Equal(t, 1, view.Stats.TotalOrders)
	assert.Equal(t, float64(72), view.Stats.TotalRevenue)
}

func TestOrderService_WatchOrders_DiffsFrames(t *testing.T) {
	service, m := newOrderService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan []*entity.Order, 2)
	frames <- []*entity.Order{{ID: "1", Status: entity.StatusNew}}
	frames <- []*entity.Order{
		{ID: "1", Status: entity.StatusPreparing},
		{ID: "2", Status: entity.StatusNew},
	}
	close(frames)

	m.orderRepo.On("Watch", ctx, "cafe_001").Return((<-chan []*entity.Order)(frames), nil)

	snapshots, err := service.WatchOrders(ctx)
	require.NoError(t, err)

	first := <-snapshots
	require.NotNil(t, first)
	assert.Equal(t, []string{"1"}, first.NewOrderIDs)
	assert.Equal(t, 1, first.Stats.TotalOrders)

	second := <-snapshots
	require.NotNil(t, second)
	assert.Equal(t, []string{"2"}, second.NewOrderIDs)
	assert.Equal(t, 2, second.Stats.TotalOrders)

	_, open := <-snapshots
	assert.False(t, open, "stream closes with the source")
}
