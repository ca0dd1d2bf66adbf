package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type supportAccountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	mailer    service.Mailer
	logger    *slog.Logger
	now       func() time.Time
}

// SupportAccountServiceParams holds dependencies for SupportAccountService, injected by Fx.
type SupportAccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Mailer    service.Mailer
	Logger    *slog.Logger
}

// NewSupportAccountService creates the admin support staff usecase.
func NewSupportAccountService(params SupportAccountServiceParams) usecase.SupportAccountUsecase {
	return &supportAccountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		mailer:    params.Mailer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *supportAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSupport adds an active support account.
func (srv *supportAccountService) CreateSupport(ctx context.Context, principal entity.Principal, input *usecase.CreateSupportInput) (*entity.User, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	user, err := newAccount(srv.hasher, srv.now(), &usecase.RegisterUserInput{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		NationalID:  input.NationalID,
		DateOfBirth: input.DateOfBirth,
	}, entity.RoleSupport)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(mapUserWriteError(err), "failed to create support user")
	}

	srv.log(ctx).Info("Support account created",
		slog.Any("userID", user.ID),
		slog.Any("createdBy", principal.UserID))

	return user, nil
}

// ListSupport returns every support account, active or not.
func (srv *supportAccountService) ListSupport(ctx context.Context, principal entity.Principal) ([]*entity.User, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	users, err := srv.userRepo.ListUsersByRole(ctx, entity.RoleSupport)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support users")
	}

	return users, nil
}

// DeactivateSupport locks the account behind an unknown random password and ends its sessions.
func (srv *supportAccountService) DeactivateSupport(ctx context.Context, principal entity.Principal, userID uuid.UUID) error {
	if !principal.HasRole(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	if _, err := srv.supportUser(ctx, userID); err != nil {
		return err
	}

	secret, err := randomToken()
	if err != nil {
		return err
	}
	hashed, err := srv.hasher.Hash(secret)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateAccountState(ctx, userID, hashed, false); err != nil {
			return errors.Wrap(err, "failed to deactivate support user")
		}

		return repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute support deactivation transaction")
	}

	srv.log(ctx).Info("Support account deactivated", slog.Any("userID", userID))

	return nil
}

// ReactivateSupport issues and emails a temporary password.
func (srv *supportAccountService) ReactivateSupport(ctx context.Context, principal entity.Principal, userID uuid.UUID) (string, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return "", domainerrors.ErrForbidden
	}

	user, err := srv.supportUser(ctx, userID)
	if err != nil {
		return "", err
	}

	password, err := temporaryPassword()
	if err != nil {
		return "", err
	}
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdateAccountState(ctx, userID, hashed, true); err != nil {
		return "", errors.Wrap(err, "failed to reactivate support user")
	}

	if err := srv.mailer.SendTemporaryPassword(ctx, user.Email, user.Username, password); err != nil {
		srv.log(ctx).Warn("Failed to email temporary password", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Support account reactivated", slog.Any("userID", userID))

	return password, nil
}

// EnsureAdmin is run by the bootstrap command, outside any request principal.
func (srv *supportAccountService) EnsureAdmin(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, bool, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, false, err
	}

	existing, err := srv.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != entity.RoleAdmin {
			return nil, false, domainerrors.ErrConflict.WithDetails("email belongs to a non-admin account")
		}

		return existing, false, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, false, errors.Wrap(err, "failed to look up admin")
	}

	user, err := newAccount(srv.hasher, srv.now(), input, entity.RoleAdmin)
	if err != nil {
		return nil, false, err
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		return nil, false, errors.Wrap(mapUserWriteError(err), "failed to create admin user")
	}

	srv.log(ctx).Info("Admin account created", slog.Any("userID", user.ID))

	return user, true, nil
}

func (srv *supportAccountService) supportUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Role != entity.RoleSupport {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user is not a support staff member")
	}

	return user, nil
}
