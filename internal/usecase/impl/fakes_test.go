package impl

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"myflix/internal/domain/entity"
	"myflix/internal/domain/repository"
	"myflix/internal/domain/service"
)

// fakeUserRepo is an in-memory UserRepository. The favorites primitives keep
// the same set semantics as the store-native operations they stand in for.
type fakeUserRepo struct {
	mu             sync.Mutex
	users          map[uuid.UUID]*entity.User
	err            error // when set, every call fails with it
	addFavoriteErr error // when set, AddFavorite alone fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) seed(user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	clone.FavoriteMovies = append([]uuid.UUID(nil), user.FavoriteMovies...)

	return &clone
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}

	return users, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for id, user := range r.users {
		if user.Username == username {
			delete(r.users, id)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *fakeUserRepo) AddFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.addFavoriteErr != nil {
		return nil, r.addFavoriteErr
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if !user.HasFavorite(movieID) {
		user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	kept := user.FavoriteMovies[:0]
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept

	return cloneUser(user), nil
}

// fakeMovieRepo is an in-memory MovieRepository.
type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
	err    error
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (r *fakeMovieRepo) seed(movie *entity.Movie) {
	r.movies[movie.ID] = movie
}

func (r *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	movies := make([]*entity.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		movies = append(movies, movie)
	}

	return movies, nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}

	return movie, nil
}

func (r *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, movie := range r.movies {
		if movie.Title == title {
			return movie, nil
		}
	}

	return nil, repository.ErrMovieNotFound
}

func (r *fakeMovieRepo) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, movie := range r.movies {
		if movie.Genre.Name == name {
			return movie, nil
		}
	}

	return nil, repository.ErrMovieNotFound
}

func (r *fakeMovieRepo) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, movie := range r.movies {
		if movie.Director.Name == name {
			return movie, nil
		}
	}

	return nil, repository.ErrMovieNotFound
}

// fakeTxManager runs the unit of work directly against the shared fakes.
// Rollback is not simulated; tests assert on returned errors instead.
type fakeTxManager struct {
	userRepo  *fakeUserRepo
	movieRepo *fakeMovieRepo
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{userRepo: m.userRepo, movieRepo: m.movieRepo})
}

type fakeRepoFactory struct {
	userRepo  *fakeUserRepo
	movieRepo *fakeMovieRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository   { return f.userRepo }
func (f *fakeRepoFactory) MovieRepo() repository.MovieRepository { return f.movieRepo }

// fakeHasher records every comparison so tests can assert that a comparison
// happened even when the username was unknown.
type fakeHasher struct {
	hashErr error
	checks  []string
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	h.checks = append(h.checks, hash)

	return hash == "hashed:"+password
}

// fakeTokenService issues deterministic tokens and validates from a canned
// claims/error pair.
type fakeTokenService struct {
	issueErr    error
	claims      *service.Claims
	validateErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID, username string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + username, nil
}

func (s *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}

	return s.claims, nil
}

func (s *fakeTokenService) TokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}
