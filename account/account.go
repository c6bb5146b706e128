package account

import (
	"time"

	"github.com/skilllens/skilllens/pkg/kernel"
)

// User is a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           kernel.UserID `json:"id"`
	Email        kernel.Email  `json:"email"`
	Name         string        `json:"name"`
	PasswordHash string        `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
