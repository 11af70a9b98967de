package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
)

type StatsHandler struct {
	Users    UserStore
	Menu     MenuStore
	Payments PaymentStore
}

// AdminStats returns approximate collection counts plus total revenue summed
// across all payments.
func (h *StatsHandler) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_stats")

	users, err := h.Users.Count(ctx)
	if err != nil {
		l.Error("admin_stats_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	menuItems, err := h.Menu.Count(ctx)
	if err != nil {
		l.Error("admin_stats_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	payments, err := h.Payments.Count(ctx)
	if err != nil {
		l.Error("admin_stats_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	revenue, err := h.Payments.TotalRevenue(ctx)
	if err != nil {
		l.Error("admin_stats_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":     users,
		"menuItems": menuItems,
		"payments":  payments,
		"revenue":   revenue,
	})
}
