package middleware

import (
	"log/slog"
	"strings"

	"licensing/internal/delivery/api/response"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	"licensing/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware resolves the caller from the bearer access token and gates routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the principal on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetPrincipal(c, entity.Principal{UserID: claims.UserID, Role: claims.Role})
		deliverycontext.EnrichLogger(c,
			slog.String("user_id", claims.UserID.String()),
			slog.String("role", claims.Role.String()))

		return next(c)
	}
}

// RequireRole allows the request when the principal holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "Caller is not authenticated")
			}

			if !principal.HasRole(roles...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role "+principal.Role.String())
			}

			return next(c)
		}
	}
}

// SetPrincipal stores the authenticated caller on c.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}

// GetPrincipal returns the caller resolved by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok
}
