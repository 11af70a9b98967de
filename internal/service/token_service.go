package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// TokenService signs and verifies the session tokens carried in the
// Authorization header. Claims always include the user's email.
type TokenService struct {
	JWTSecret []byte
}

// Issue signs the caller-supplied claims with a one hour expiry. The payload
// is trusted as-is.
func (t *TokenService) Issue(claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.JWTSecret)
}

// Verify parses a raw token and returns its claims. Malformed, badly signed
// and expired tokens all fail.
func (t *TokenService) Verify(rawToken string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(rawToken, func(j *jwt.Token) (interface{}, error) {
		if _, ok := j.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", j.Header["alg"])
		}
		return t.JWTSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	return claims, nil
}

// Email extracts the email claim from a verified claims set.
func Email(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
