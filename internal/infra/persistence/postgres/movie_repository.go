package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"myflix/internal/domain/entity"
	"myflix/internal/domain/repository"
	"myflix/internal/infra/persistence/model"
)

// movieRepository implements the repository.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// FindAll retrieves every movie in the catalog.
func (repo *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movieMs []model.MovieModel
	if err := repo.db.WithContext(ctx).Find(&movieMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(movieMs))
	for i := range movieMs {
		movies = append(movies, toMovieDomain(&movieMs[i]))
	}

	return movies, nil
}

// FindByID retrieves a movie by primary key.
func (repo *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByTitle retrieves a movie by its exact title.
func (repo *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return repo.findOne(ctx, "title = ?", title)
}

// FindByGenreName retrieves any movie carrying the named genre.
func (repo *movieRepository) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	return repo.findOne(ctx, "genre_name = ?", name)
}

// FindByDirectorName retrieves any movie directed by the named director.
func (repo *movieRepository) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	return repo.findOne(ctx, "director_name = ?", name)
}

func (repo *movieRepository) findOne(ctx context.Context, query string, arg any) (*entity.Movie, error) {
	var movieM model.MovieModel
	err := repo.db.WithContext(ctx).Where(query, arg).First(&movieM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	return toMovieDomain(&movieM), nil
}

// toMovieDomain maps the persistence model back to a pure domain entity.
func toMovieDomain(movieM *model.MovieModel) *entity.Movie {
	return &entity.Movie{
		ID:          movieM.ID,
		Title:       movieM.Title,
		Description: movieM.Description,
		Genre: entity.Genre{
			Name:        movieM.GenreName,
			Description: movieM.GenreDesc,
		},
		Director: entity.Director{
			Name:  movieM.DirectorName,
			Bio:   movieM.DirectorBio,
			Birth: movieM.DirectorBirth,
			Death: movieM.DirectorDeath,
		},
		ImagePath: movieM.ImagePath,
		Featured:  movieM.Featured,
		CreatedAt: movieM.CreatedAt,
		UpdatedAt: movieM.UpdatedAt,
	}
}
