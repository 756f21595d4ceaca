package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"myflix/internal/delivery/http/response"
	"myflix/internal/usecase"
)

// MovieHandler holds dependencies for catalog read handlers.
type MovieHandler struct {
	uc     usecase.MovieUsecase
	logger *slog.Logger
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMovies handles the request to list the full catalog.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.uc.ListMovies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Movies retrieved successfully")
}

// GetMovieByTitle handles the request to read a single movie by its title.
func (h *MovieHandler) GetMovieByTitle(c echo.Context) error {
	movie, err := h.uc.GetMovieByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movie, "Movie retrieved successfully")
}

// GetGenreByName handles the request to read genre details by name.
func (h *MovieHandler) GetGenreByName(c echo.Context) error {
	genre, err := h.uc.GetGenreByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genre, "Genre retrieved successfully")
}

// GetDirectorByName handles the request to read director details by name.
func (h *MovieHandler) GetDirectorByName(c echo.Context) error {
	director, err := h.uc.GetDirectorByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, director, "Director retrieved successfully")
}
