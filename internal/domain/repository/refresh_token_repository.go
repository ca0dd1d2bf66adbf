// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrResetTokenNotFound is returned when a password reset token is unknown or already used.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// RefreshTokenRepository defines the interface for refresh token and session management operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	// Used when a password changes or an account is deactivated.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessionsByUserID returns the number of active (non-expired) sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

// PasswordResetRepository stores single-use reset tokens.
type PasswordResetRepository interface {
	// CreateResetToken persists a reset token.
	CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// FindResetTokenByHash retrieves a token by hash. Returns ErrResetTokenNotFound when missing.
	FindResetTokenByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// ConsumeResetToken stamps used_at if the token is still unused.
	// Returns ErrResetTokenNotFound when it was consumed concurrently.
	ConsumeResetToken(ctx context.Context, id uuid.UUID) error
}
