package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"myflix/internal/domain/entity"
)

// ErrMovieNotFound is returned when no movie record matches the lookup key.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines the contract for querying the movie catalog.
type MovieRepository interface {
	// FindAll retrieves every movie in the catalog.
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// FindByID retrieves a movie by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// FindByTitle retrieves a movie by its exact title.
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)

	// FindByGenreName retrieves any movie carrying the named genre, used to
	// surface the genre descriptor itself.
	FindByGenreName(ctx context.Context, name string) (*entity.Movie, error)

	// FindByDirectorName retrieves any movie directed by the named director,
	// used to surface the director descriptor itself.
	FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error)
}
