// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"diary/internal/delivery/http/middleware"
	"diary/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	JournalHandler     *handler.JournalHandler
	EntitlementHandler *handler.EntitlementHandler
	DeviceHandler      *handler.DeviceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	journalHandler     *handler.JournalHandler
	entitlementHandler *handler.EntitlementHandler
	deviceHandler      *handler.DeviceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		journalHandler:     params.JournalHandler,
		entitlementHandler: params.EntitlementHandler,
		deviceHandler:      params.DeviceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.DELETE("/account", r.userHandler.DeleteAccount)
	}

	// Diary entry routes
	journalGroup := e.Group("/journal")
	journalGroup.Use(r.authMiddleware.Authenticate)
	{
		journalGroup.GET("/resolve", r.journalHandler.ResolveForDate)
		journalGroup.GET("/entries", r.journalHandler.ListEntries)
		journalGroup.GET("/entries/day", r.journalHandler.ListByDay)
		journalGroup.POST("/entries", r.journalHandler.CreateEntry)
		journalGroup.GET("/entries/:id", r.journalHandler.GetEntry)
		journalGroup.PUT("/entries/:id", r.journalHandler.UpdateEntry)
		journalGroup.DELETE("/entries/:id", r.journalHandler.DeleteEntry)
		journalGroup.POST("/images", r.journalHandler.AttachImage)
	}

	// Paywall routes
	entitlementGroup := e.Group("/entitlement")
	entitlementGroup.Use(r.authMiddleware.Authenticate)
	{
		entitlementGroup.GET("", r.entitlementHandler.Resolve)
		entitlementGroup.POST("/receipts", r.entitlementHandler.ReportReceipt)
	}

	// Push device routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}
