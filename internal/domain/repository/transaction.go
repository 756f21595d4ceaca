package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	MovieRepo() MovieRepository
}

// TransactionManager runs a unit of work inside one database transaction.
// The callback receives a factory whose repositories all share that
// transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
