// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petmart/internal/delivery/http/middleware"
	"petmart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	FavoriteHandler  *handler.FavoriteHandler
	UserHandler      *handler.UserHandler
	OrderHandler     *handler.OrderHandler
	ShipmentHandler  *handler.ShipmentHandler
	DashboardHandler *handler.DashboardHandler
	VIPHandler       *handler.VIPHandler
	AdminHandler     *handler.AdminHandler
	CategoryHandler  *handler.CategoryHandler
	BannerHandler    *handler.BannerHandler
	AuthMiddleware   *middleware.AuthMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront surface
	e.GET("/banners", r.params.BannerHandler.ListActive)
	e.GET("/products", r.params.ProductHandler.List)
	e.GET("/products/:id", r.params.ProductHandler.Get)

	// Cart surface. End-user authentication is out of scope, so the user is
	// addressed explicitly in the path.
	cartGroup := e.Group("/cart/:userID")
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.params.CartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productID", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
	}

	// Wishlist surface, addressed like the cart
	favoriteGroup := e.Group("/favorites/:userID")
	{
		favoriteGroup.GET("", r.params.FavoriteHandler.List)
		favoriteGroup.POST("", r.params.FavoriteHandler.Add)
		favoriteGroup.DELETE("/:productID", r.params.FavoriteHandler.Remove)
	}

	// Order surface
	userGroup := e.Group("/users/:userID")
	{
		userGroup.POST("/orders", r.params.OrderHandler.Checkout)
		userGroup.GET("/orders", r.params.OrderHandler.ListByUser)
	}
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.POST("/:id/pay", r.params.OrderHandler.Pay)
	}

	// Admin auth routes
	adminAuthGroup := e.Group("/admin/auth")
	{
		adminAuthGroup.POST("/register", r.params.AdminHandler.Register)
		adminAuthGroup.POST("/login", r.params.AdminHandler.Login)
	}

	// Admin routes that require a valid access token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		adminGroup.GET("/users", r.params.UserHandler.AdminList)

		adminGroup.GET("/orders", r.params.OrderHandler.AdminList)
		adminGroup.PUT("/orders/:id/status", r.params.OrderHandler.SetStatus)
		adminGroup.DELETE("/orders/:id", r.params.OrderHandler.Delete)
		adminGroup.GET("/orders/:orderID/shipment", r.params.ShipmentHandler.GetByOrder)

		adminGroup.GET("/shipments", r.params.ShipmentHandler.List)
		adminGroup.POST("/shipments", r.params.ShipmentHandler.Create)
		adminGroup.GET("/shipments/:id", r.params.ShipmentHandler.Get)
		adminGroup.PUT("/shipments/:id", r.params.ShipmentHandler.Update)
		adminGroup.DELETE("/shipments/:id", r.params.ShipmentHandler.Delete)

		adminGroup.GET("/dashboard/stats", r.params.DashboardHandler.Stats)
		adminGroup.GET("/dashboard/monthly-sales", r.params.DashboardHandler.MonthlySales)
		adminGroup.GET("/dashboard/categories", r.params.DashboardHandler.CategoryBreakdown)
		adminGroup.GET("/dashboard/recent-orders", r.params.DashboardHandler.RecentOrders)

		adminGroup.GET("/vip-levels", r.params.VIPHandler.List)
		adminGroup.POST("/vip-levels", r.params.VIPHandler.Create)
		adminGroup.PUT("/vip-levels/:id", r.params.VIPHandler.Update)
		adminGroup.DELETE("/vip-levels/:id", r.params.VIPHandler.Delete)

		adminGroup.GET("/categories", r.params.CategoryHandler.List)
		adminGroup.POST("/categories", r.params.CategoryHandler.Create)
		adminGroup.PUT("/categories/:id", r.params.CategoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.params.CategoryHandler.Delete)

		adminGroup.GET("/banners", r.params.BannerHandler.List)
		adminGroup.POST("/banners", r.params.BannerHandler.Create)
		adminGroup.PUT("/banners/:id", r.params.BannerHandler.Update)
		adminGroup.DELETE("/banners/:id", r.params.BannerHandler.Delete)
	}
}
