// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	loyaltyRepo  repository.LoyaltyRepository
	publisher    service.EventPublisher
	config       *config.Config
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	LoyaltyRepo  repository.LoyaltyRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		loyaltyRepo:  params.LoyaltyRepo,
		publisher:    params.Publisher,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PlaceOrder validates the cart, prices it, applies loyalty redemption
// and settles the points ledger, then persists the order.
func (s *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if !entity.ValidTableNumber(input.TableID, s.config.Cafe.MaxTableNumber) {
		return nil, domainerrors.ErrInvalidTableNumber.WrapMessage("table " + input.TableID)
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderEmpty
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}
	if !input.PaymentMethod.IsEnabled() {
		return nil, domainerrors.ErrPaymentMethodDisabled
	}

	subtotal := entity.ComputeSubtotal(input.Items)
	serviceFee := entity.ComputeServiceFee(subtotal, s.config.Cafe.ServiceFeeRate)

	order := &entity.Order{
		TenantID:      s.config.Cafe.TenantID,
		TableID:       input.TableID,
		CustomerName:  entity.GuestName,
		Items:         input.Items,
		Subtotal:      subtotal,
		ServiceFee:    serviceFee,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.StatusNew,
		Notes:         input.Notes,
	}

	settings, err := s.loyaltyRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	var customer *entity.Customer
	if input.CustomerID != "" {
		customer, err = s.customerRepo.FindByID(ctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil, domainerrors.ErrCustomerNotFound
			}

			return nil, errors.Wrap(err, "failed to find customer")
		}

		order.CustomerID = customer.ID
		order.CustomerName = customer.Name
		order.CustomerPhone = customer.Phone

		quote := settings.QuoteRedemption(customer.LoyaltyPoints, subtotal, input.RedeemPoints)
		if input.RedeemPoints && !quote.Eligible {
			return nil, domainerrors.ErrInsufficientPoints
		}
		order.PointsDiscount = quote.Discount
		order.PointsUsed = quote.PointsUsed
	} else if input.RedeemPoints {
		return nil, domainerrors.ErrInsufficientPoints.WrapMessage("guest orders cannot redeem points")
	}

	order.Total = order.Subtotal + order.ServiceFee - order.PointsDiscount
	if !order.CheckTotals() {
		return nil, domainerrors.ErrInternalError.WrapMessage("order totals failed invariant check")
	}
	if customer != nil {
		order.PointsEarned = settings.PointsEarned(order.Total)
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}
	order.ID = id
	order.OrderedAt = time.Now()

	if customer != nil {
		s.settleLoyalty(ctx, customer, order)
	}

	s.publish(ctx, service.EventOrderCreated, order)
	s.log(ctx).Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("table_id", order.TableID),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// settleLoyalty applies the points ledger for a placed order: the earn
// for the total minus the points spent on the discount, plus the visit
// counters. Ledger failures are logged, not surfaced; the order has
// already been accepted.
func (s *orderService) settleLoyalty(ctx context.Context, customer *entity.Customer, order *entity.Order) {
	delta := order.PointsEarned - order.PointsUsed
	if delta != 0 {
		if err := s.customerRepo.IncrementPoints(ctx, customer.ID, delta); err != nil {
			s.log(ctx).Error("failed to settle loyalty points",
				slog.String("customer_id", customer.ID),
				slog.Int("delta", delta),
				slog.Any("error", err),
			)
		}
	}
	if err := s.customerRepo.RecordOrder(ctx, customer.ID); err != nil {
		s.log(ctx).Error("failed to record customer visit",
			slog.String("customer_id", customer.ID),
			slog.Any("error", err),
		)
	}
}

// GetOrder retrieves a single order for the confirmation screen.
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns the dashboard view filtered by status and date window.
func (s *orderService) ListOrders(ctx context.Context, status string, window entity.DateWindow) (*usecase.OrderView, error) {
	if status != "" && status != "all" && !entity.OrderStatus(status).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
	}
	if window == "" {
		window = entity.WindowAll
	}
	if !window.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown date window")
	}

	orders, err := s.orderRepo.ListByTenant(ctx, s.config.Cafe.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	view := entity.FilterOrders(orders, status, window, time.Now())

	return &usecase.OrderView{
		Orders: view,
		Stats:  entity.ComputeStats(view),
	}, nil
}

// ListCustomerOrders returns a customer's own order history.
func (s *orderService) ListCustomerOrders(ctx context.Context, customerID string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, s.config.Cafe.TenantID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// AdvanceOrder moves an order one step forward in the pipeline.
func (s *orderService) AdvanceOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, domainerrors.ErrOrderTerminal
	}

	return s.applyStatus(ctx, order, next)
}

// UpdateOrderStatus sets an explicit status, rejecting anything that is
// not the single-step successor of the current one.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, domainerrors.ErrOrderTerminal
	}
	if status != next {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	return s.applyStatus(ctx, order, status)
}

// applyStatus persists the transition and emits the status event.
func (s *orderService) applyStatus(ctx context.Context, order *entity.Order, status entity.OrderStatus) (*entity.Order, error) {
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = status

	s.publish(ctx, service.EventOrderStatusChanged, order)
	s.log(ctx).Info("order status updated",
		slog.String("order_id", order.ID),
		slog.String("status", status.String()),
	)

	return order, nil
}

// WatchOrders streams live dashboard snapshots until ctx is cancelled.
func (s *orderService) WatchOrders(ctx context.Context) (<-chan *usecase.OrderSnapshot, error) {
	frames, err := s.orderRepo.Watch(ctx, s.config.Cafe.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch orders")
	}

	out := make(chan *usecase.OrderSnapshot)
	go func() {
		defer close(out)

		var prev []*entity.Order
		for orders := range frames {
			snapshot := &usecase.OrderSnapshot{
				Orders:      orders,
				Stats:       entity.ComputeStats(orders),
				NewOrderIDs: entity.NewOrderIDs(prev, orders),
			}
			prev = orders

			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// publish emits an order event. Publish failures are logged, never
// surfaced; the write has already happened.
func (s *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OrderID:    order.ID,
		TenantID:   order.TenantID,
		TableID:    order.TableID,
		CustomerID: order.CustomerID,
		Status:     order.Status.String(),
		Total:      order.Total,
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
