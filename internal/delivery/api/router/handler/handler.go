// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"
	"time"

	"licensing/internal/delivery/api/middleware"
	"licensing/internal/delivery/api/response"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = time.DateOnly

// principal returns the authenticated caller or ErrUnauthorized.
func principal(c echo.Context) (entity.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return p, nil
}

// uuidParam parses a path parameter, naming it in the validation error.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithField(name)
	}

	return id, nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
