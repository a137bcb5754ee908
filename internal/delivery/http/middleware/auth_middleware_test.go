package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
	mockrepository "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/repository"
	mockservice "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/service"
)

type authMocks struct {
	tokenSvc  *mockservice.MockTokenService
	staffRepo *mockrepository.MockStaffRepository
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *authMocks) {
	t.Helper()

	m := &authMocks{
		tokenSvc:  mockservice.NewMockTokenService(t),
		staffRepo: mockrepository.NewMockStaffRepository(t),
	}

	return NewAuthMiddleware(m.tokenSvc, m.staffRepo), m
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw, m := newAuthMiddleware(t)

	claims := &service.Claims{StaffID: "staff1", Role: entity.RoleWaiter, Type: "access"}
	account := &entity.StaffAccount{ID: "staff1", Username: "sara", IsActive: true}

	m.tokenSvc.On("ValidateToken", "good-token").Return(claims, nil)
	m.staffRepo.On("FindByID", mock.Anything, "staff1").Return(account, nil)

	c, err := invoke(t, mw.Authenticate, "Bearer good-token")

	require.NoError(t, err)
	got, ok := GetStaffAccount(c)
	require.True(t, ok)
	assert.Equal(t, "staff1", got.ID)

	id, ok := GetStaffID(c)
	require.True(t, ok)
	assert.Equal(t, "staff1", id)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	_, err := invoke(t, mw.Authenticate, "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	mw, m := newAuthMiddleware(t)

	claims := &service.Claims{StaffID: "staff1", Role: entity.RoleWaiter, Type: "refresh"}
	m.tokenSvc.On("ValidateToken", "refresh-token").Return(claims, nil)

	_, err := invoke(t, mw.Authenticate, "Bearer refresh-token")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_INVALID", appErr.ErrorCode())
}

func TestAuthenticate_DeactivatedAccount(t *testing.T) {
	mw, m := newAuthMiddleware(t)

	claims := &service.Claims{StaffID: "staff1", Role: entity.RoleManager, Type: "access"}
	account := &entity.StaffAccount{ID: "staff1", IsActive: false}

	m.tokenSvc.On("ValidateToken", "stale-token").Return(claims, nil)
	m.staffRepo.On("FindByID", mock.Anything, "staff1").Return(account, nil)

	_, err := invoke(t, mw.Authenticate, "Bearer stale-token")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCOUNT_INACTIVE", appErr.ErrorCode())
}

func TestRequirePermission_CapabilityGate(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	waiter := &entity.StaffAccount{
		ID:          "w1",
		Role:        entity.RoleWaiter,
		IsActive:    true,
		Permissions: entity.RolePreset(entity.RoleWaiter),
	}

	e := echo.New()

	run := func(capability string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(contextKeyStaffAccount, waiter)

		handler := mw.RequirePermission(capability)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		return handler(c)
	}

	assert.NoError(t, run("orders.update_status"))

	err := run("staff_management")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERMISSION_DENIED", appErr.ErrorCode())
}

func TestRequirePermission_AdminOverride(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	// Stored flags all false; the admin role still passes the route gate.
	admin := &entity.StaffAccount{ID: "a1", Role: entity.RoleAdmin, IsActive: true}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(contextKeyStaffAccount, admin)

	handler := mw.RequirePermission("staff_management")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
}
