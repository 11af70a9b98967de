package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/models"
	"github.com/Skotchmaster/bistro_backend/internal/service"
)

// UserFinder is the user lookup the admin guard needs; (nil, nil) means no
// such user.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard holds the per-route authorization checks. RequireAuth verifies the
// bearer token, AdminOnly is always composed after it.
type Guard struct {
	Tokens *service.TokenService
	Users  UserFinder
}

func (g *Guard) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("middleware", "require_auth")

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			l.Warn("auth_failed", "status", 401, "reason", "missing_authorization_header")
			return unauthorized(c)
		}

		rawToken, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || rawToken == "" {
			l.Warn("auth_failed", "status", 401, "reason", "malformed_authorization_header")
			return unauthorized(c)
		}

		claims, err := g.Tokens.Verify(rawToken)
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", "invalid_token", "error", err)
			return unauthorized(c)
		}

		setUserContext(c, claims)
		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error":   true,
		"message": "unauthorized access",
	})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{
		"error":   true,
		"message": "forbidden access",
	})
}
