// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fragments/internal/delivery/http/middleware"
	"fragments/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FragmentHandler *handler.FragmentHandler
	OAuthHandler    *handler.OAuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	fragmentHandler *handler.FragmentHandler
	oauthHandler    *handler.OAuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		fragmentHandler: params.FragmentHandler,
		oauthHandler:    params.OAuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Development identity provider
	oauthGroup := e.Group("/oauth2")
	{
		oauthGroup.GET("/authorize", r.oauthHandler.Authorize)
		oauthGroup.POST("/authorize", r.oauthHandler.Authorize)
		oauthGroup.POST("/token", r.oauthHandler.Token)
	}

	// Fragment routes that require authentication
	fragmentGroup := e.Group("/v1/fragments")
	fragmentGroup.Use(r.authMiddleware.Authenticate)
	{
		fragmentGroup.GET("", r.fragmentHandler.ListFragments)
		fragmentGroup.POST("", r.fragmentHandler.CreateFragment)
		fragmentGroup.GET("/:id", r.fragmentHandler.GetFragment)
		fragmentGroup.GET("/:id/info", r.fragmentHandler.GetFragmentInfo)
		fragmentGroup.DELETE("/:id", r.fragmentHandler.DeleteFragment)
	}
}
