package service

import (
	"context"
)

// MaxPushBatch is the largest token list one SendBatch call accepts (the FCM multicast limit).
const MaxPushBatch = 500

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult counts per-token outcomes of one batch. InvalidTokens are tokens the
// provider reported as unregistered; callers deactivate the matching devices.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push messages to device tokens.
type NotificationService interface {
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
