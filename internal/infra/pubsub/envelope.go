package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"licensing/internal/domain/service"
	"licensing/internal/errors"
)

// Message attribute keys. The push worker reads request_id for tracing.
const (
	AttrNotificationID = "notification_id"
	AttrRecipientID    = "recipient_id"
	AttrRequestID      = "request_id"
)

const localSubscription = "projects/local/subscriptions/notification-push"

// PushEnvelope is the body Pub/Sub posts to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *service.NotificationEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: localSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = event.NotificationID
	env.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return env, nil
}

// Event decodes the notification event carried in the envelope.
func (e *PushEnvelope) Event() (*service.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse notification event")
	}

	return &event, nil
}

// RequestID returns the tracing id from the attributes, falling back to the event payload.
func (e *PushEnvelope) RequestID(event *service.NotificationEvent) string {
	if id := e.Message.Attributes[AttrRequestID]; id != "" {
		return id
	}
	if event != nil {
		return event.RequestID
	}

	return ""
}

func eventAttributes(event *service.NotificationEvent) map[string]string {
	attrs := map[string]string{
		AttrNotificationID: event.NotificationID,
		AttrRecipientID:    event.RecipientID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}
