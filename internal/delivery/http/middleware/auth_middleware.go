package middleware

import (
	"strings"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/response"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates access tokens minted by the external auth
// provider. The service itself never issues tokens; with no secret configured
// the API runs open and the middleware passes every request through.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enabled  bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		enabled:  cfg.SecretKey.Access != "",
	}
}

// Authenticate validates the bearer token and exposes the caller's identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set("userID", claims.Subject)
		c.Set("email", claims.Email)

		return next(c)
	}
}
