// Command seedadmin creates the first admin account from the seedAdmin config section.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"licensing/config"
	"licensing/internal/domain/lifecycle"
	"licensing/internal/errors"
	"licensing/internal/infra/auth"
	"licensing/internal/infra/email"
	logs "licensing/internal/infra/log"
	"licensing/internal/infra/persistence/postgres"
	"licensing/internal/usecase"
	"licensing/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			email.New,
			impl.NewSupportAccountService,
		),
		fx.Invoke(seed),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 2*lifecycle.DefaultTimeout)
	defer cancel()

	err := app.Start(startCtx)
	stopErr := app.Stop(context.Background())
	if err != nil || stopErr != nil {
		slog.Error("Seeding admin failed", slog.Any("error", errors.Join(err, stopErr)))
		os.Exit(1)
	}
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	SupportUC usecase.SupportAccountUsecase
}

// seed runs after the database hook so the connection is verified and migrated first.
func seed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			input, err := seedInput(params.Config.SeedAdmin)
			if err != nil {
				return err
			}

			user, created, err := params.SupportUC.EnsureAdmin(ctx, input)
			if err != nil {
				return err
			}

			params.Logger.Info("Admin account ready",
				slog.String("email", user.Email),
				slog.Bool("created", created))

			return nil
		},
	})
}

func seedInput(cfg *config.SeedAdminConfig) (*usecase.RegisterUserInput, error) {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("seedAdmin.email and seedAdmin.password are required")
	}

	dateOfBirth, err := time.Parse(time.DateOnly, cfg.DateOfBirth)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid seedAdmin.dateOfBirth %q", cfg.DateOfBirth)
	}

	return &usecase.RegisterUserInput{
		Username:    cfg.Username,
		Email:       cfg.Email,
		Password:    cfg.Password,
		NationalID:  cfg.NationalID,
		DateOfBirth: dateOfBirth,
	}, nil
}
