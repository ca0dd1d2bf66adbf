// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, principal entity.Principal) (*entity.User, error)
	UpdateUsername(ctx context.Context, principal entity.Principal, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, principal entity.Principal, input *UpdatePasswordInput) error
	// ListUsers returns everyone except the caller and internal accounts, e.g. for picking a reported user.
	ListUsers(ctx context.Context, principal entity.Principal) ([]*entity.UserSummary, error)
}

// SupportAccountUsecase defines admin management of support staff accounts.
type SupportAccountUsecase interface {
	CreateSupport(ctx context.Context, principal entity.Principal, input *CreateSupportInput) (*entity.User, error)
	ListSupport(ctx context.Context, principal entity.Principal) ([]*entity.User, error)
	DeactivateSupport(ctx context.Context, principal entity.Principal, userID uuid.UUID) error
	// ReactivateSupport issues a temporary password, emails it and also returns it
	// so the admin can hand it over when mail delivery fails.
	ReactivateSupport(ctx context.Context, principal entity.Principal, userID uuid.UUID) (string, error)
	// EnsureAdmin creates the bootstrap admin unless the email is already an admin.
	// The bool reports whether a new account was created.
	EnsureAdmin(ctx context.Context, input *RegisterUserInput) (*entity.User, bool, error)
}

// --- Input DTOs ---

// UpdatePasswordInput defines the data required to change the caller's password.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// CreateSupportInput defines a new support staff account.
type CreateSupportInput struct {
	Username    string
	Email       string
	Password    string
	NationalID  string
	DateOfBirth time.Time
}
