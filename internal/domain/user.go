package domain

import "errors"

var (
	// ErrUsernameTaken is returned when trying to create a user with a username
	// that is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when trying to create a user with an email
	// address that is already registered.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound is returned when looking up a non-existent user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the username/password combination
	// is incorrect. Callers must not reveal whether the username or the
	// password was the wrong half.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Field limits for user records. Submissions violating these limits are
// rejected before they reach the repository.
const (
	UsernameMaxLength = 15
	EmailMaxLength    = 50
	PasswordMinLength = 4
	PasswordMaxLength = 15
)

// User represents a registered account. Username and email are globally
// unique and immutable after creation; no update or delete path exists.
type User struct {
	ID           int64  // Unique identifier, assigned on insert
	Username     string // Login name, at most UsernameMaxLength characters
	Email        string // Contact address, at most EmailMaxLength characters
	PasswordHash []byte // bcrypt hash, never the plaintext
	CreatedAt    int64  // Unix timestamp of account creation
}
