package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/service"
)

const (
	claimsKey = "claims"
	emailKey  = "email"
)

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	c.Set(claimsKey, claims)
	c.Set(emailKey, service.Email(claims))
}

func GetClaims(c echo.Context) jwt.MapClaims {
	if claims, ok := c.Get(claimsKey).(jwt.MapClaims); ok {
		return claims
	}
	return jwt.MapClaims{}
}

// GetEmail returns the authenticated email attached by RequireAuth, empty if
// the route ran unguarded.
func GetEmail(c echo.Context) string {
	if email, ok := c.Get(emailKey).(string); ok {
		return email
	}
	return ""
}
