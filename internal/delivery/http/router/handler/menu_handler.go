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

// MenuHandler holds dependencies for catalog-related handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{uc: uc, logger: logger}
}

// GetMenu handles the customer-facing menu request.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	sections, err := h.uc.GetMenu(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sections, "")
}

// ListCategories handles the management category list.
func (h *MenuHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateCategory adds a menu group.
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var category entity.Category
	if err := c.Bind(&category); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	created, err := h.uc.CreateCategory(c.Request().Context(), &category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Category created")
}

// UpdateCategory edits a menu group.
func (h *MenuHandler) UpdateCategory(c echo.Context) error {
	var category entity.Category
	if err := c.Bind(&category); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	category.ID = c.Param("id")

	if err := h.uc.UpdateCategory(c.Request().Context(), &category); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category updated")
}

// DeleteCategory removes a menu group.
func (h *MenuHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// ListProducts handles the management product list.
func (h *MenuHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct retrieves one product.
func (h *MenuHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct adds a menu item.
func (h *MenuHandler) CreateProduct(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Product created")
}

// UpdateProduct edits a menu item.
func (h *MenuHandler) UpdateProduct(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	product.ID = c.Param("id")

	if err := h.uc.UpdateProduct(c.Request().Context(), &product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated")
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles whether a product can be ordered.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := h.uc.SetAvailability(c.Request().Context(), c.Param("id"), req.Available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Availability updated")
}

// DeleteProduct removes a menu item permanently.
func (h *MenuHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
