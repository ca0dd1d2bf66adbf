package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"licensing/internal/delivery/api/middleware"
	"licensing/internal/delivery/api/validator"
	"licensing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	ownerPrincipal   = entity.Principal{UserID: uuid.MustParse("6f1c7a52-0f4e-4d8e-9a4b-1e2f3a4b5c6d"), Role: entity.RoleUser}
	adminPrincipal   = entity.Principal{UserID: uuid.MustParse("0b7e2d41-5c3a-4f1e-8d2b-9a8b7c6d5e4f"), Role: entity.RoleAdmin}
	supportPrincipal = entity.Principal{UserID: uuid.MustParse("a3d9e8f7-1b2c-4d5e-8f9a-0b1c2d3e4f5a"), Role: entity.RoleSupport}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestEcho wires the validator and error handler the server uses.
// A nil principal leaves the request unauthenticated.
func newTestEcho(p *entity.Principal) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	if p != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				middleware.SetPrincipal(c, *p)

				return next(c)
			}
		})
	}

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
