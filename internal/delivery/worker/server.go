// Package worker serves the Pub/Sub push subscription that fans notifications out to devices.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"licensing/config"
	"licensing/internal/delivery"
	"licensing/internal/delivery/middleware"
	"licensing/internal/delivery/worker/handler"
	"licensing/internal/domain/lifecycle"
	"licensing/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	pushPath = "/push"
	// Pub/Sub caps a message at 10MB; the base64 envelope is a little larger.
	pushBodyLimit = "14M"
)

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	server   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "pushworker"})
	})
	e.POST(pushPath, params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger:   params.Logger,
		server:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func workerPort(cfg *config.Config) int {
	if cfg.PubSub != nil && cfg.PubSub.WorkerPort > 0 {
		return cfg.PubSub.WorkerPort
	}

	return cfg.HTTP.Port
}

func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Push worker listening", slog.String("hostPort", s.hostPort), slog.String("path", pushPath))
	if err := s.server.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Push worker shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
