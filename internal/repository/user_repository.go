package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// UserRepository provides access to stored users.
type UserRepository interface {
	// List returns all users.
	List(ctx context.Context) ([]*entity.User, error)

	// GetByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByUsername returns the user with the given username, or (nil, nil)
	// when no such user exists.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Insert stores a new user and returns the created row, including the
	// defaulted avatar URL.
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
}
