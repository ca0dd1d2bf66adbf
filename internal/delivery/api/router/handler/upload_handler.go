package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"licensing/internal/delivery/api/response"
	deliverycontext "licensing/internal/delivery/context"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// UploadHandler streams stored attachments back to clients.
type UploadHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Serve writes the object named by the wildcard path.
func (h *UploadHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return domainerrors.ErrNotFound
	}

	obj, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if err := obj.Body.Close(); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Failed to close attachment", slog.String("key", key), slog.Any("error", err))
		}
	}()

	if obj.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}
