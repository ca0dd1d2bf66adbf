package handler

import (
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), p, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Notification marked as read")
}

// PushConfig is public; clients fetch it before subscribing.
func (h *NotificationHandler) PushConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notificationUC.PushConfig(c.Request().Context()))
}
