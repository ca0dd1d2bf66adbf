package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"licensing/config"
	"licensing/internal/delivery"
	"licensing/internal/delivery/api"
	"licensing/internal/delivery/api/middleware"
	"licensing/internal/delivery/api/router/handler"
	"licensing/internal/delivery/scheduler"
	"licensing/internal/infra/auth"
	"licensing/internal/infra/email"
	logs "licensing/internal/infra/log"
	"licensing/internal/infra/metrics"
	"licensing/internal/infra/notification"
	"licensing/internal/infra/payment/ctechpay"
	"licensing/internal/infra/persistence/postgres"
	"licensing/internal/infra/pubsub"
	"licensing/internal/infra/storage"
	"licensing/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewBusinessRepository,
			postgres.NewLocationRepository,
			postgres.NewContractRepository,
			postgres.NewRentRepository,
			postgres.NewTicketRepository,
			postgres.NewUserReportRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ctechpay.New,
			email.New,
			storage.New,
			pubsub.NewEventPublisher,
			notification.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewSupportAccountService,
			impl.NewNotificationService,
			impl.NewBusinessService,
			impl.NewLocationService,
			impl.NewBillingService,
			impl.NewRevenueService,
			impl.NewReminderService,
			impl.NewTicketService,
			impl.NewReportService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewSupportAccountHandler,
			handler.NewBusinessHandler,
			handler.NewLocationHandler,
			handler.NewPaymentHandler,
			handler.NewRevenueHandler,
			handler.NewSupportHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
