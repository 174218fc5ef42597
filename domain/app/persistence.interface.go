package app

import "context"

type UserRepository interface {
	Create(ctx context.Context, user *User) error
}

// PersistenceGateway writes a batch in order and stops at the first failure.
// It returns the number of rows written before returning.
type PersistenceGateway interface {
	PersistAll(ctx context.Context, batch Batch) (int, error)
}

type UsersService interface {
	PersistStaged(ctx context.Context) (int, error)
}
