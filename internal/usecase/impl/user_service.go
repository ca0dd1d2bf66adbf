// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"licensing/config"
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

const defaultResetTokenTTL = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.Mailer
	maxActiveSessions int
	resetTokenTTL     time.Duration
	frontendURL       string
	logger            *slog.Logger
	now               func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		resetTokenTTL:    defaultResetTokenTTL,
		logger:           params.Logger,
		now:              time.Now,
	}

	if params.Config != nil {
		if params.Config.Auth != nil {
			srv.maxActiveSessions = params.Config.Auth.MaxActiveSessions
			if params.Config.Auth.ResetTokenTTL > 0 {
				srv.resetTokenTTL = params.Config.Auth.ResetTokenTTL
			}
		}
		if params.Config.Billing != nil {
			srv.frontendURL = strings.TrimRight(params.Config.Billing.FrontendURL, "/")
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a user account and its first session.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	user, err := newAccount(srv.hasher, srv.now(), input, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", user.Email))

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().CreateUser(ctx, user); err != nil {
			return mapUserWriteError(err)
		}

		return srv.storeRefreshToken(ctx, repoFactory.NewRefreshTokenRepository(), user.ID, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	if err := srv.mailer.SendWelcome(ctx, user.Email, user.Username); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// newAccount validates the registration fields and builds an active account holding role.
func newAccount(hasher service.PasswordHasher, now time.Time, input *usecase.RegisterUserInput, role entity.Role) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("username")
	}

	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	nationalID := strings.TrimSpace(input.NationalID)
	if nationalID == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("nationalId")
	}
	if input.DateOfBirth.IsZero() || input.DateOfBirth.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithField("dateOfBirth")
	}

	hashed, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		NationalID:   nationalID,
		DateOfBirth:  input.DateOfBirth,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, user.ID, refreshToken); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if srv.maxActiveSessions <= 0 {
		return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshToken)
	}

	// Lock, count and insert in one short transaction when the session limit is enabled.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if err := repoFactory.NewUserRepository().AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		active, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded
		}

		return srv.storeRefreshToken(ctx, refreshRepo, userID, refreshToken)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user login transaction")
	}

	return nil
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	now := srv.now()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}

	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session of the presented refresh token. Unknown tokens are ignored.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// ForgotPassword emails a single-use reset link. Unknown emails get the same answer.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := randomToken()
	if err != nil {
		return err
	}

	now := srv.now()
	reset := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: now.Add(srv.resetTokenTTL),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPasswordResetRepository().CreateResetToken(ctx, reset)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store password reset token")
	}

	link := srv.frontendURL + "/reset-password/" + token
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, user.Username, link); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	srv.log(ctx).Info("Password reset email sent", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword consumes a reset token, sets the new password and ends every session.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := validatePassword(input.Password); err != nil {
		return err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.NewPasswordResetRepository()

		reset, err := resetRepo.FindResetTokenByHash(ctx, hashToken(input.Token))
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find reset token")
		}
		if !reset.Usable(srv.now()) {
			return domainerrors.ErrResetTokenInvalid
		}

		if err := resetRepo.ConsumeResetToken(ctx, reset.ID); err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, reset.UserID, hashed); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, reset.UserID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}
