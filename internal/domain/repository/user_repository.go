// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrDuplicateEmail or ErrDuplicateUsername on unique violations.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUsername changes the username. Returns ErrDuplicateUsername when taken.
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateAccountState replaces the password hash and active flag together.
	UpdateAccountState(ctx context.Context, id uuid.UUID, passwordHash string, active bool) error

	// ListUsers returns users other than excludeID whose role is not in excludeRoles.
	ListUsers(ctx context.Context, excludeID uuid.UUID, excludeRoles []entity.Role) ([]*entity.User, error)

	// ListUsersByRole returns every user holding role, newest first.
	ListUsersByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// AcquireSessionMutex locks the user row until the surrounding transaction ends.
	// Serializes the session count check with the insert of a new session.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
