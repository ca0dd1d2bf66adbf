// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"go.uber.org/fx"
)

// Roles hidden from the user directory.
var hiddenDirectoryRoles = []entity.Role{entity.RoleAdmin, entity.RoleStaff}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	return findUser(ctx, srv.userRepo, principal)
}

// UpdateUsername renames the caller.
func (srv *profileService) UpdateUsername(ctx context.Context, principal entity.Principal, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("username")
	}

	if err := srv.userRepo.UpdateUsername(ctx, principal.UserID, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(mapUserWriteError(err), "failed to update username")
	}

	srv.log(ctx).Info("Username updated", slog.Any("userID", principal.UserID))

	return findUser(ctx, srv.userRepo, principal)
}

// UpdatePassword checks the current password, stores the new one and ends every session.
func (srv *profileService) UpdatePassword(ctx context.Context, principal entity.Principal, input *usecase.UpdatePasswordInput) error {
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	user, err := findUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrCurrentPasswordMismatch
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, user.ID, hashed); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, user.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password update transaction")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", user.ID))

	return nil
}

// ListUsers returns the directory of other regular and support users.
func (srv *profileService) ListUsers(ctx context.Context, principal entity.Principal) ([]*entity.UserSummary, error) {
	users, err := srv.userRepo.ListUsers(ctx, principal.UserID, hiddenDirectoryRoles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*entity.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &entity.UserSummary{ID: user.ID, Username: user.Username, Email: user.Email})
	}

	return summaries, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, principal entity.Principal) (*entity.User, error) {
	user, err := userRepo.FindUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
