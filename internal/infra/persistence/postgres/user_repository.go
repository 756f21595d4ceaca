// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/domain/repository"
	"myflix/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the favorites set.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Favorites").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their username, preloading the favorites set.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Favorites").
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every registered user.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).Preload("Favorites").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user record.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the mutable profile fields of an existing user record in a
// single keyed UPDATE statement.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"birthday":      user.Birthday,
	}

	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if res.Error != nil {
		if isUniqueConstraintViolation(res.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update user")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user record by username. Favorites rows cascade at the
// store level.
func (repo *userRepository) Delete(ctx context.Context, username string) error {
	res := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddFavorite atomically adds a movie to the user's favorites set. The insert
// is a single statement with ON CONFLICT DO NOTHING, so concurrent adds for
// the same user never lose one another and repeats are no-ops.
func (repo *userRepository) AddFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error) {
	fav := model.FavoriteMovieModel{UserID: userID, MovieID: movieID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
	if err != nil {
		// Either referenced row may have vanished between check and insert;
		// report the one the violated constraint names.
		if isForeignKeyConstraintViolation(err) {
			if referencesMovieKey(err) {
				return nil, repository.ErrMovieNotFound
			}

			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return repo.FindByID(ctx, userID)
}

// RemoveFavorite atomically removes a movie from the user's favorites set.
// Removing an absent movie deletes zero rows and is not an error.
func (repo *userRepository) RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error) {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&model.FavoriteMovieModel{}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return repo.FindByID(ctx, userID)
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	favorites := make([]uuid.UUID, 0, len(userM.Favorites))
	for _, fav := range userM.Favorites {
		favorites = append(favorites, fav.MovieID)
	}

	return &entity.User{
		ID:             userM.ID,
		Username:       userM.Username,
		Email:          userM.Email,
		PasswordHash:   userM.PasswordHash,
		Birthday:       userM.Birthday,
		FavoriteMovies: favorites,
		CreatedAt:      userM.CreatedAt,
		UpdatedAt:      userM.UpdatedAt,
	}
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Birthday:     user.Birthday,
	}
}
