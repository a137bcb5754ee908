// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/middleware"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	OrderHandler    *handler.OrderHandler
	CustomerHandler *handler.CustomerHandler
	StaffHandler    *handler.StaffHandler
	MenuHandler     *handler.MenuHandler
	BannerHandler   *handler.BannerHandler
	LoyaltyHandler  *handler.LoyaltyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Customer-facing routes; the table QR deep link lands here, so
	// nothing in this group requires a token.
	api := e.Group("/api")
	{
		api.GET("/session", r.params.CustomerHandler.OpenSession)
		api.POST("/customers", r.params.CustomerHandler.Register)
		api.GET("/customers/lookup", r.params.CustomerHandler.FindByPhone)
		api.GET("/customers/:id/loyalty", r.params.LoyaltyHandler.GetStatus)
		api.GET("/customers/:id/orders", r.params.OrderHandler.ListCustomerOrders)

		api.GET("/menu", r.params.MenuHandler.GetMenu)
		api.GET("/banners", r.params.BannerHandler.ActiveBanners)

		api.POST("/orders", r.params.OrderHandler.PlaceOrder)
		api.GET("/orders/:id", r.params.OrderHandler.GetOrder)
		api.POST("/loyalty/quote", r.params.LoyaltyHandler.QuoteRedemption)
	}

	// Staff authentication
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.StaffHandler.Login)
		authGroup.POST("/refresh", r.params.StaffHandler.Refresh)
	}

	// Staff dashboard routes, JWT-gated with per-route capabilities
	admin := e.Group("/admin")
	admin.Use(auth.Authenticate)
	{
		admin.GET("/me", r.params.StaffHandler.Me)

		orders := admin.Group("/orders")
		{
			orders.GET("", r.params.OrderHandler.ListOrders, auth.RequirePermission("orders.view"))
			orders.GET("/stream", r.params.OrderHandler.StreamOrders, auth.RequirePermission("orders.view"))
			orders.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus, auth.RequirePermission("orders.update_status"))
			orders.POST("/:id/advance", r.params.OrderHandler.AdvanceOrder, auth.RequirePermission("orders.update_status"))
		}

		menu := admin.Group("/menu")
		{
			menu.GET("/categories", r.params.MenuHandler.ListCategories, auth.RequirePermission("menu.view"))
			menu.POST("/categories", r.params.MenuHandler.CreateCategory, auth.RequirePermission("menu.add_item"))
			menu.PUT("/categories/:id", r.params.MenuHandler.UpdateCategory, auth.RequirePermission("menu.edit_item"))
			menu.DELETE("/categories/:id", r.params.MenuHandler.DeleteCategory, auth.RequirePermission("menu.delete_item"))

			menu.GET("/products", r.params.MenuHandler.ListProducts, auth.RequirePermission("menu.view"))
			menu.GET("/products/:id", r.params.MenuHandler.GetProduct, auth.RequirePermission("menu.view"))
			menu.POST("/products", r.params.MenuHandler.CreateProduct, auth.RequirePermission("menu.add_item"))
			menu.PUT("/products/:id", r.params.MenuHandler.UpdateProduct, auth.RequirePermission("menu.edit_item"))
			menu.PATCH("/products/:id/availability", r.params.MenuHandler.SetAvailability, auth.RequirePermission("menu.toggle_availability"))
			menu.DELETE("/products/:id", r.params.MenuHandler.DeleteProduct, auth.RequirePermission("menu.delete_item"))
		}

		banners := admin.Group("/banners")
		{
			banners.GET("", r.params.BannerHandler.ListBanners)
			banners.POST("", r.params.BannerHandler.CreateBanner)
			banners.PUT("/:id", r.params.BannerHandler.UpdateBanner)
			banners.PATCH("/:id/active", r.params.BannerHandler.SetActive)
			banners.DELETE("/:id", r.params.BannerHandler.DeleteBanner)
		}

		loyalty := admin.Group("/loyalty")
		{
			loyalty.GET("/settings", r.params.LoyaltyHandler.GetSettings)
			loyalty.PUT("/settings", r.params.LoyaltyHandler.UpdateSettings)
			loyalty.POST("/customers/:id/birthday-bonus", r.params.LoyaltyHandler.GrantBirthdayBonus)
		}

		staff := admin.Group("/staff", auth.RequirePermission("staff_management"))
		{
			staff.GET("", r.params.StaffHandler.ListStaff)
			staff.GET("/:id", r.params.StaffHandler.GetStaff)
			staff.POST("", r.params.StaffHandler.CreateStaff)
			staff.PUT("/:id", r.params.StaffHandler.UpdateStaff)
			staff.PATCH("/:id/active", r.params.StaffHandler.SetActive)
			staff.PATCH("/:id/permissions", r.params.StaffHandler.SetPermission)
			staff.POST("/:id/preset", r.params.StaffHandler.ApplyRolePreset)
			staff.DELETE("/:id", r.params.StaffHandler.DeleteStaff)
		}

		admin.GET("/customers", r.params.CustomerHandler.ListCustomers)
		admin.GET("/tables/:table/qr", r.params.CustomerHandler.TableQR)
	}
}
