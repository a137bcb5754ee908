package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
)

const (
	contextKeyStaffID      = "staffID"
	contextKeyStaffAccount = "staffAccount"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	staffRepo repository.StaffRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, staffRepo repository.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, staffRepo: staffRepo}
}

// Authenticate validates the JWT access token and loads the staff account
// behind it. Deactivated accounts are rejected even with a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WithDetails("token must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}
		if claims.Type != "access" {
			return domainerrors.ErrTokenInvalid.WithDetails("refresh tokens cannot access the API")
		}

		account, err := m.staffRepo.FindByID(c.Request().Context(), claims.StaffID)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WithDetails("account behind this token no longer exists")
		}
		if !account.IsActive {
			return domainerrors.ErrAccountInactive
		}

		c.Set(contextKeyStaffID, account.ID)
		c.Set(contextKeyStaffAccount, account)

		return next(c)
	}
}

// RequirePermission is a middleware factory that gates a route on one
// capability dot-path. Admins pass regardless of their stored flags.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := GetStaffAccount(c)
			if !ok {
				return domainerrors.ErrPermissionDenied.WithDetails("account information missing")
			}

			if !account.CanAccessRoute(capability) {
				return domainerrors.ErrPermissionDenied.WithDetails("requires '" + capability + "'")
			}

			return next(c)
		}
	}
}

// GetStaffID returns the authenticated staff ID set by Authenticate.
func GetStaffID(c echo.Context) (string, bool) {
	id, ok := c.Get(contextKeyStaffID).(string)

	return id, ok
}

// GetStaffAccount returns the authenticated account set by Authenticate.
func GetStaffAccount(c echo.Context) (*entity.StaffAccount, bool) {
	account, ok := c.Get(contextKeyStaffAccount).(*entity.StaffAccount)

	return account, ok
}
