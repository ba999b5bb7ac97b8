package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the identity store's data access contract.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameAlreadyExists on a duplicate username; the store is
	// left unchanged in that case.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername is the login lookup.
	// Returns ErrUserNotFound when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)
}
