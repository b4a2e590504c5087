// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		catalogHandler: params.CatalogHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/products", r.catalogHandler.List)
	e.GET("/products/:id", r.catalogHandler.Get)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
	}

	// Cart routes need an owner, verified user or guest key
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Identify)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/totals", r.cartHandler.Totals)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productID", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
		cartGroup.POST("/merge", r.cartHandler.Merge)
	}

	// Order routes for the same owner resolution
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Identify)
	{
		orderGroup.POST("", r.orderHandler.Submit)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Admin routes require the locally issued JWT with the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/orders", r.orderHandler.ListAll)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
		adminGroup.GET("/products", r.catalogHandler.ListAdmin)
		adminGroup.POST("/products", r.catalogHandler.Create)
		adminGroup.PUT("/products/:id", r.catalogHandler.Update)
		adminGroup.DELETE("/products/:id", r.catalogHandler.Delete)
	}
}
