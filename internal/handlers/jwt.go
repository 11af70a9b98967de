package handlers

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/service"
)

type JWTHandler struct {
	Tokens *service.TokenService
}

// IssueToken signs whatever user payload the client sends. The payload is
// trusted as-is; identity proofing happens on the frontend.
func (h *JWTHandler) IssueToken(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "jwt_issue")

	claims := jwt.MapClaims{}
	if err := c.Bind(&claims); err != nil {
		l.Warn("issue_token_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Tokens.Issue(claims)
	if err != nil {
		l.Error("issue_token_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
