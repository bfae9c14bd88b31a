package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "fragments/internal/delivery/context"
	"fragments/internal/delivery/http/response"
	"fragments/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthorizationUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthorizationUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, logger: logger}
}

// Authenticate validates the bearer token and sets the owner on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "invalid token format, must be Bearer token")
		}

		req := c.Request()
		identity, err := m.authUC.Identify(req.Context(), tokenString)
		if err != nil {
			deliverycontext.Logger(req.Context(), m.logger).Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, "invalid or expired token")
		}

		c.SetRequest(req.WithContext(deliverycontext.WithOwner(req.Context(), identity.Subject, m.logger)))

		return next(c)
	}
}

// OwnerID returns the owner set by Authenticate.
func OwnerID(c echo.Context) string {
	return deliverycontext.Owner(c.Request().Context())
}
