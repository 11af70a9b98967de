package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
)

// AdminOnly checks the authenticated user's stored role. It never verifies
// tokens itself and relies on RequireAuth running first.
func (g *Guard) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "admin_only")

		email := GetEmail(c)
		user, err := g.Users.FindByEmail(ctx, email)
		if err != nil {
			l.Error("admin_check_failed", "status", 500, "reason", "db_error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if user == nil || user.Role != "admin" {
			l.Warn("admin_check_failed", "status", 403, "email", email)
			return forbidden(c)
		}

		return next(c)
	}
}
