// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"myflix/internal/domain/entity"
)

// MovieUsecase defines the read operations exposed over the movie catalog.
type MovieUsecase interface {
	ListMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*entity.Movie, error)
	GetGenreByName(ctx context.Context, name string) (*entity.Genre, error)
	GetDirectorByName(ctx context.Context, name string) (*entity.Director, error)
}
