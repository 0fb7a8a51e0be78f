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

	usersGroup := e.Group("/api/users")
	{
		usersGroup.POST("/register", r.accountHandler.Register)
		usersGroup.POST("/login", r.accountHandler.Login)

		// Profile routes require a valid access token. Registered before the
		// :id route so the static path wins.
		profileGroup := usersGroup.Group("/profile")
		profileGroup.Use(r.authMiddleware.Authenticate)
		{
			profileGroup.GET("", r.profileHandler.GetProfile)
			profileGroup.PUT("", r.profileHandler.UpdateProfile)
		}

		usersGroup.GET("/:id", r.accountHandler.GetUser)
	}
}
