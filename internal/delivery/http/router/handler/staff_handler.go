package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/middleware"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/response"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// StaffHandler holds dependencies for staff auth and management handlers.
type StaffHandler struct {
	uc     usecase.StaffUsecase
	logger *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.StaffUsecase, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	Account      *entity.StaffAccount `json:"account"`
}

// Login handles the dashboard login request.
func (h *StaffHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	result, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Account:      result.Account,
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles the token refresh request.
func (h *StaffHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	result, err := h.uc.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Account:      result.Account,
	}, "Token refreshed successfully")
}

// Me returns the account behind the current access token.
func (h *StaffHandler) Me(c echo.Context) error {
	account, ok := middleware.GetStaffAccount(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account in token")
	}

	return response.Success(c, http.StatusOK, account, "")
}

// ListStaff handles the staff management list.
func (h *StaffHandler) ListStaff(c echo.Context) error {
	accounts, err := h.uc.ListStaff(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "")
}

// GetStaff retrieves one account.
func (h *StaffHandler) GetStaff(c echo.Context) error {
	account, err := h.uc.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

type createStaffRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// CreateStaff registers a new dashboard account.
func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	account, err := h.uc.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     entity.StaffRole(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Staff account created")
}

type updateStaffRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UpdateStaff edits the profile fields of an account.
func (h *StaffHandler) UpdateStaff(c echo.Context) error {
	var req updateStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	account := &entity.StaffAccount{
		ID:    c.Param("id"),
		Name:  req.Name,
		Phone: req.Phone,
		Role:  entity.StaffRole(req.Role),
	}
	if err := h.uc.UpdateStaff(c.Request().Context(), account); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff account updated")
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive toggles whether an account may log in or act.
func (h *StaffHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := h.uc.SetActive(c.Request().Context(), c.Param("id"), req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff account toggled")
}

type setPermissionRequest struct {
	Capability string `json:"capability"`
	Value      bool   `json:"value"`
}

// SetPermission flips a single capability by its dot-path.
func (h *StaffHandler) SetPermission(c echo.Context) error {
	var req setPermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}

	if err := h.uc.SetPermission(c.Request().Context(), c.Param("id"), req.Capability, req.Value); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Permission updated")
}

type applyPresetRequest struct {
	Role string `json:"role"`
}

// ApplyRolePreset overwrites the permission document with a role baseline.
func (h *StaffHandler) ApplyRolePreset(c echo.Context) error {
	var req applyPresetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preset input")
	}

	if err := h.uc.ApplyRolePreset(c.Request().Context(), c.Param("id"), entity.StaffRole(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role preset applied")
}

// DeleteStaff removes an account permanently.
func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	if err := h.uc.DeleteStaff(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff account deleted")
}
