package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"licensing/internal/domain/entity"
	"licensing/internal/domain/service"
	mockSvc "licensing/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid access token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().
			ValidateToken("good", service.TokenTypeAccess).
			Return(&service.Claims{UserID: userID, Role: entity.RoleSupport, Type: service.TokenTypeAccess}, nil)

		c, rec := newAuthContext("Bearer good")
		var seen entity.Principal
		err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			seen, _ = GetPrincipal(c)

			return okHandler(c)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, entity.Principal{UserID: userID, Role: entity.RoleSupport}, seen)
	})

	t.Run("missing header", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, rec := newAuthContext("Basic abc")

		require.NoError(t, NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token presented", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("refresh", service.TokenTypeAccess).Return(nil, errors.New("token type mismatch"))

		c, rec := newAuthContext("Bearer refresh")

		require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	tests := []struct {
		name string
		role entity.Role
		want int
	}{
		{name: "admin allowed", role: entity.RoleAdmin, want: http.StatusNoContent},
		{name: "support allowed", role: entity.RoleSupport, want: http.StatusNoContent},
		{name: "user forbidden", role: entity.RoleUser, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			c.Set(principalKey, entity.Principal{UserID: uuid.New(), Role: tt.role})

			require.NoError(t, m.RequireRole(entity.RoleAdmin, entity.RoleSupport)(okHandler)(c))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
