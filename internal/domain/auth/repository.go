package auth

import (
	"context"
)

// Repository defines persistence operations for operator accounts.
type Repository interface {
	// GetByUsername retrieves a user, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *User) error

	// Delete removes a user by username.
	Delete(ctx context.Context, username string) error

	// List returns all usernames.
	List(ctx context.Context) ([]User, error)
}
