package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/response"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

type registerCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Register handles the loyalty signup request.
func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	customer, err := h.uc.Register(c.Request().Context(), req.Name, req.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer registered successfully")
}

// FindByPhone handles the returning-visitor lookup.
func (h *CustomerHandler) FindByPhone(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Phone number is required")
	}

	customer, err := h.uc.FindByPhone(c.Request().Context(), phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// OpenSession validates the table from a QR deep link and opens the
// per-visit context, guest or registered.
func (h *CustomerHandler) OpenSession(c echo.Context) error {
	tableID := c.QueryParam("table")
	customerID := c.QueryParam("customerId")

	session, err := h.uc.OpenSession(c.Request().Context(), tableID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ListCustomers handles the dashboard loyalty-member list.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// TableQR renders the printable QR code for one table as a PNG.
func (h *CustomerHandler) TableQR(c echo.Context) error {
	png, err := h.uc.GenerateTableQR(c.Request().Context(), c.Param("table"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
