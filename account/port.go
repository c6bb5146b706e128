package account

import (
	"context"

	"github.com/skilllens/skilllens/pkg/kernel"
)

type Repository interface {
	// Create stores a new user
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// ExistsByEmail checks whether an account uses the email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}
