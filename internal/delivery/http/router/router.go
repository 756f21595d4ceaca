// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"myflix/internal/delivery/http/middleware"
	"myflix/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	MovieHandler   *handler.MovieHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	movieHandler   *handler.MovieHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		movieHandler:   params.MovieHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Registration and login stay open; every catalog and profile route sits
// behind the token gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open routes: the only way in without a token.
	e.POST("/users", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Refreshing requires a still-valid token.
	e.POST("/login/refresh", r.userHandler.RefreshToken, r.authMiddleware.Authenticate)

	// Catalog routes require authentication.
	movieGroup := e.Group("/movies")
	movieGroup.Use(r.authMiddleware.Authenticate)
	{
		movieGroup.GET("", r.movieHandler.ListMovies)
		movieGroup.GET("/:title", r.movieHandler.GetMovieByTitle)
		movieGroup.GET("/genres/:name", r.movieHandler.GetGenreByName)
		movieGroup.GET("/directors/:name", r.movieHandler.GetDirectorByName)
	}

	// User routes require authentication; mutations are additionally
	// owner-restricted inside the handlers.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:username", r.userHandler.GetProfile)
		userGroup.PUT("/:username", r.userHandler.UpdateProfile)
		userGroup.DELETE("/:username", r.userHandler.Deregister)
		userGroup.POST("/:username/movies/:movieID", r.userHandler.AddFavorite)
		userGroup.DELETE("/:username/movies/:movieID", r.userHandler.RemoveFavorite)
	}
}
