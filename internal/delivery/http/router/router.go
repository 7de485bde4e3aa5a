// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Account lifecycle routes
	users := api.Group("/users")
	{
		users.POST("/sign-up", r.accountHandler.SignUp)
		users.POST("/sign-in", r.accountHandler.SignIn)
		users.POST("/change-password", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Profile routes; the public lookup stays outside the auth gate
	profile := api.Group("/profile")
	{
		profile.POST("", r.profileHandler.Upsert, r.authMiddleware.Authenticate)
		profile.GET("/to/:username", r.profileHandler.GetByUsername)
	}
}
