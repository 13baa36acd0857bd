package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// User is the domain entity corresponding to the `users` table.
type User struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string
	Email        string
	Role         Role
	PasswordHash string

	// IsAvailable only matters for drivers: a driver is marked busy while a
	// ride they are assigned to is in progress.
	IsAvailable bool
}

var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
	ErrBadTimestamps     = errors.New("updated_at cannot be before created_at")
)

// NewUser constructs a new User entity. The caller provides an already-hashed password.
func NewUser(username, email string, role Role, passwordHash string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		Role:         role,
		PasswordHash: strings.TrimSpace(passwordHash),
		IsAvailable:  true,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks invariants of the User entity.
func (user *User) Validate() error {
	if user.Username == "" {
		return ErrUsernameRequired
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return ErrInvalidEmail
	}
	if !user.Role.Valid() {
		return ErrInvalidRole
	}
	if user.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	if !user.CreatedAt.IsZero() && !user.UpdatedAt.IsZero() && user.UpdatedAt.Before(user.CreatedAt) {
		return ErrBadTimestamps
	}
	return nil
}

// SetAvailability flips the driver availability flag. Updates UpdatedAt timestamp.
func (user *User) SetAvailability(available bool) {
	user.IsAvailable = available
	user.touch()
}

// touch sets UpdatedAt to now (UTC).
func (user *User) touch() {
	user.UpdatedAt = time.Now().UTC()
}

// Convenience helpers.
func (user *User) IsAdmin() bool  { return user.Role.IsAdmin() }
func (user *User) IsDriver() bool { return user.Role.IsDriver() }
func (user *User) IsRider() bool  { return user.Role.IsRider() }
