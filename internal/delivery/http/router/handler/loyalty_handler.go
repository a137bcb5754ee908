package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/response"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// LoyaltyHandler holds dependencies for loyalty program handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{uc: uc, logger: logger}
}

// GetSettings handles the loyalty configuration read.
func (h *LoyaltyHandler) GetSettings(c echo.Context) error {
	settings, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateSettings handles the loyalty configuration write.
func (h *LoyaltyHandler) UpdateSettings(c echo.Context) error {
	var settings entity.LoyaltySettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.uc.UpdateSettings(c.Request().Context(), &settings); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Loyalty settings updated")
}

type redemptionQuoteRequest struct {
	CustomerID string  `json:"customerId"`
	Subtotal   float64 `json:"subtotal"`
	OptIn      bool    `json:"optIn"`
}

// QuoteRedemption previews the discount a balance buys against a cart.
func (h *LoyaltyHandler) QuoteRedemption(c echo.Context) error {
	var req redemptionQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	quote, err := h.uc.QuoteRedemption(c.Request().Context(), req.CustomerID, req.Subtotal, req.OptIn)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// GrantBirthdayBonus credits the birthday bonus to one customer.
func (h *LoyaltyHandler) GrantBirthdayBonus(c echo.Context) error {
	status, err := h.uc.GrantBirthdayBonus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Birthday bonus granted")
}

// GetStatus resolves a customer's balance and tier for the profile screen.
func (h *LoyaltyHandler) GetStatus(c echo.Context) error {
	status, err := h.uc.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}
