// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	JobHandler     *handler.JobHandler
	ContactHandler *handler.ContactHandler
	SettingHandler *handler.SettingHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	jobHandler     *handler.JobHandler
	contactHandler *handler.ContactHandler
	settingHandler *handler.SettingHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		jobHandler:     params.JobHandler,
		contactHandler: params.ContactHandler,
		settingHandler: params.SettingHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/sync", r.authHandler.SyncAccount)
	}

	// Public site-facing routes
	e.POST("/track", r.jobHandler.Track)
	e.POST("/contact", r.contactHandler.CreateMessage)
	e.GET("/settings/maintenance", r.settingHandler.GetMaintenanceMode)

	// Back-office routes behind the role gate
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireBackOffice)
	{
		adminGroup.GET("/jobs", r.jobHandler.ListJobs)
		adminGroup.POST("/jobs", r.jobHandler.CreateJob)
		adminGroup.GET("/jobs/:id", r.jobHandler.GetJob)
		adminGroup.PUT("/jobs/:id", r.jobHandler.UpdateJob)
		adminGroup.DELETE("/jobs/:id", r.jobHandler.DeleteJob)

		adminGroup.GET("/accounts", r.accountHandler.ListAccounts)
		adminGroup.POST("/accounts", r.accountHandler.CreateAccount)
		adminGroup.GET("/accounts/:id", r.accountHandler.GetAccount)
		adminGroup.PATCH("/accounts/:id", r.accountHandler.UpdateAccount)
		adminGroup.DELETE("/accounts/:id", r.accountHandler.DeleteAccount)

		adminGroup.GET("/messages", r.contactHandler.ListMessages)
		adminGroup.DELETE("/messages/:id", r.contactHandler.DeleteMessage)

		adminGroup.POST("/settings/maintenance", r.settingHandler.SetMaintenanceMode)

		adminGroup.GET("/stats", r.statsHandler.GetDashboardStats)
	}
}
