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

// BannerHandler holds dependencies for promotional banner handlers.
type BannerHandler struct {
	uc     usecase.BannerUsecase
	logger *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler, injected by Fx.
func NewBannerHandler(uc usecase.BannerUsecase, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{uc: uc, logger: logger}
}

// ActiveBanners handles the customer carousel request.
func (h *BannerHandler) ActiveBanners(c echo.Context) error {
	banners, err := h.uc.ActiveBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// ListBanners handles the management banner list.
func (h *BannerHandler) ListBanners(c echo.Context) error {
	banners, err := h.uc.ListBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// CreateBanner adds a banner.
func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var banner entity.Banner
	if err := c.Bind(&banner); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}

	created, err := h.uc.CreateBanner(c.Request().Context(), &banner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Banner created")
}

// UpdateBanner edits a banner.
func (h *BannerHandler) UpdateBanner(c echo.Context) error {
	var banner entity.Banner
	if err := c.Bind(&banner); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}
	banner.ID = c.Param("id")

	if err := h.uc.UpdateBanner(c.Request().Context(), &banner); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Banner updated")
}

type bannerToggleRequest struct {
	Active bool `json:"active"`
}

// SetActive toggles a banner's visibility flag.
func (h *BannerHandler) SetActive(c echo.Context) error {
	var req bannerToggleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := h.uc.SetActive(c.Request().Context(), c.Param("id"), req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Banner toggled")
}

// DeleteBanner removes a banner permanently.
func (h *BannerHandler) DeleteBanner(c echo.Context) error {
	if err := h.uc.DeleteBanner(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Banner deleted")
}
