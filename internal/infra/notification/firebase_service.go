// Package notification delivers push notifications to registered devices.
package notification

import (
	"context"
	"log/slog"

	"licensing/config"
	"licensing/internal/domain/service"
	"licensing/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)


type firebaseService struct {
	client *messaging.Client
}

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the FCM service, or a logging stand-in when firebase is not configured.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates an FCM client from a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatch sends one multicast of at most service.MaxPushBatch tokens.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{}
	if len(tokens) == 0 {
		return result, nil
	}
	if len(tokens) > service.MaxPushBatch {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result.Sent = response.SuccessCount
	result.Failed = response.FailureCount
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// logOnlyService records pushes in the log for environments without FCM credentials.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "[Push] delivery skipped", slog.String("title", msg.Title), slog.Int("tokens", len(tokens)))

	return &service.PushResult{Sent: len(tokens)}, nil
}
