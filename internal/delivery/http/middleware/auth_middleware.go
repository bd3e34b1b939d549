package middleware

import (
	"strings"

	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/service"
	"tablenow/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token. Failures are returned as AppErrors so the central error handler
// renders them in the shared envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		// Refresh tokens are not accepted as request credentials.
		if claims.Type != auth.TokenTypeAccess {
			return domainerrors.ErrUnauthorized.WithDetails("Access token required")
		}

		// Set customer info on the context for handlers to use
		c.Set("customerID", claims.CustomerID)

		return next(c)
	}
}
