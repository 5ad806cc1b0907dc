package user

import (
	"context"

	"github.com/mkrupp/catcafe-web/internal/domain"
)

// Repository defines the interface for user data persistence. Persistence
// mechanics stay behind this interface; domain.User is a plain struct with
// no query methods of its own.
type Repository interface {
	// Insert adds a new user and returns its assigned identifier.
	// Returns domain.ErrUsernameTaken or domain.ErrEmailTaken when the
	// respective unique constraint rejects the record. The constraint is
	// authoritative: two concurrent inserts of the same username cannot
	// both succeed.
	Insert(ctx context.Context, username, email string, passwordHash []byte) (int64, error)

	// FindByUsername retrieves a user by username.
	// Returns the user and true if found, or nil and false if not found.
	FindByUsername(ctx context.Context, username string) (*domain.User, bool, error)

	// FindByEmail retrieves a user by email address.
	// Returns the user and true if found, or nil and false if not found.
	FindByEmail(ctx context.Context, email string) (*domain.User, bool, error)

	// FindByID retrieves a user by identifier.
	// Returns the user and true if found, or nil and false if not found.
	FindByID(ctx context.Context, id int64) (*domain.User, bool, error)

	// Close releases any resources held by the repository.
	Close() error
}

// RepositoryFactory is a function that creates a new Repository instance.
// Returns an error if initialization fails.
type RepositoryFactory func() (Repository, error)
