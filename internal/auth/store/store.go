package store

import (
	"context"
	"errors"

	"github.com/authsystem/authd/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// ExistsByEmail reports whether a user with the given email exists.
	// The email must already be normalized (lowercase).
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken; the driver's unique
	// constraint makes this atomic, so concurrent duplicate registrations
	// resolve deterministically to a single success.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login. Returns ErrNotFound when absent.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}
