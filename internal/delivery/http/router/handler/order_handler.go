// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/response"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	config *config.Config
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, cfg *config.Config, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, config: cfg, logger: logger}
}

type placeOrderRequest struct {
	TableID       string             `json:"tableId"`
	CustomerID    string             `json:"customerId"`
	Items         []entity.OrderItem `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	RedeemPoints  bool               `json:"redeemPoints"`
	Notes         string             `json:"notes"`
}

type orderConfirmation struct {
	Order             *entity.Order `json:"order"`
	ShortCode         string        `json:"shortCode"`
	PointsEarned      int           `json:"pointsEarned"`
	EstimatedPrepTime string        `json:"estimatedPrepTime,omitempty"`
}

// PlaceOrder handles the customer checkout request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		TableID:       req.TableID,
		CustomerID:    req.CustomerID,
		Items:         req.Items,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		RedeemPoints:  req.RedeemPoints,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	confirmation := orderConfirmation{
		Order:             order,
		ShortCode:         order.ShortCode(),
		PointsEarned:      order.PointsEarned,
		EstimatedPrepTime: h.config.Cafe.EstimatedPrepTime,
	}

	return response.Success(c, http.StatusCreated, confirmation, "Order placed successfully")
}

// GetOrder handles the confirmation-screen lookup of a single order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders handles the dashboard order list with filters and stats.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	status := c.QueryParam("status")

	window := entity.DateWindow(c.QueryParam("window"))
	if window == "" {
		window = entity.WindowAll
	}

	view, err := h.uc.ListOrders(c.Request().Context(), status, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ListCustomerOrders handles a customer's own order history.
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	orders, err := h.uc.ListCustomerOrders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles an explicit status change from the dashboard.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// AdvanceOrder moves an order one step forward in the pipeline.
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	order, err := h.uc.AdvanceOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order advanced")
}

// StreamOrders pushes live dashboard snapshots over Server-Sent Events
// until the client disconnects.
func (h *OrderHandler) StreamOrders(c echo.Context) error {
	ctx := c.Request().Context()

	snapshots, err := h.uc.WatchOrders(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				h.logger.Error("Failed to encode order snapshot", slog.Any("error", err))

				continue
			}

			if _, err := res.Write([]byte("event: orders\ndata: " + string(payload) + "\n\n")); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
