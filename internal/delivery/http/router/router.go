// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/middleware"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PropertyHandler     *handler.PropertyHandler
	MaintenanceHandler  *handler.MaintenanceHandler
	NotificationHandler *handler.NotificationHandler
	ExportHandler       *handler.ExportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	propertyHandler     *handler.PropertyHandler
	maintenanceHandler  *handler.MaintenanceHandler
	notificationHandler *handler.NotificationHandler
	exportHandler       *handler.ExportHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		propertyHandler:     params.PropertyHandler,
		maintenanceHandler:  params.MaintenanceHandler,
		notificationHandler: params.NotificationHandler,
		exportHandler:       params.ExportHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	propertyGroup := api.Group("/properties")
	{
		propertyGroup.GET("", r.propertyHandler.List)
		propertyGroup.POST("", r.propertyHandler.Create)
		propertyGroup.PATCH("/:id", r.propertyHandler.Update)
		propertyGroup.DELETE("/:id", r.propertyHandler.Delete)
	}

	api.GET("/selection", r.propertyHandler.GetSelection)
	api.PUT("/selection", r.propertyHandler.SetSelection)

	maintenanceGroup := api.Group("/maintenance")
	{
		maintenanceGroup.GET("", r.maintenanceHandler.List)
		maintenanceGroup.POST("", r.maintenanceHandler.Create)
		maintenanceGroup.GET("/overview", r.maintenanceHandler.Overview)
		maintenanceGroup.GET("/:id", r.maintenanceHandler.Get)
		maintenanceGroup.PATCH("/:id", r.maintenanceHandler.Update)
		maintenanceGroup.DELETE("/:id", r.maintenanceHandler.Delete)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.Delete)
	}

	api.GET("/export/pdf", r.exportHandler.ExportPDF)
}
