// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/domain/repository"
	"myflix/internal/usecase"
)

// movieService implements the MovieUsecase interface.
type movieService struct {
	movieRepo repository.MovieRepository
	logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(movieRepo repository.MovieRepository, logger *slog.Logger) usecase.MovieUsecase {
	return &movieService{
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// ListMovies retrieves the full catalog.
func (srv *movieService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := srv.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	return movies, nil
}

// GetMovieByTitle retrieves a single movie by its exact title.
func (srv *movieService) GetMovieByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	movie, err := srv.movieRepo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, domainerrors.ErrMovieNotFound.WrapMessage("movie lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find movie by title")
	}

	return movie, nil
}

// GetGenreByName returns the genre descriptor carried by any movie of that genre.
func (srv *movieService) GetGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	movie, err := srv.movieRepo.FindByGenreName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, domainerrors.ErrMovieNotFound.WrapMessage("genre lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find movie by genre")
	}

	return &movie.Genre, nil
}

// GetDirectorByName returns the director descriptor carried by any movie they directed.
func (srv *movieService) GetDirectorByName(ctx context.Context, name string) (*entity.Director, error) {
	movie, err := srv.movieRepo.FindByDirectorName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, domainerrors.ErrMovieNotFound.WrapMessage("director lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find movie by director")
	}

	return &movie.Director, nil
}
