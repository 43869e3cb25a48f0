package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject and role claims into the request context.
// Tokens are issued by the external identity service; the provided secret
// must match the one it signs with.  Handlers access the authenticated
// caller via `c.Get("user_id")` and `c.Get("role")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, ok := parseClaims(raw, secret)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}

// OptionalJWT decodes a Bearer token when one is present but lets anonymous
// requests straight through.  It is used on public read endpoints whose
// response is personalised for authenticated callers (the caller's own vote
// on a movie).  An invalid token is treated as anonymous rather than being
// rejected.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				if claims, ok := parseClaims(strings.TrimPrefix(auth, "Bearer "), secret); ok {
					c.Set("user_id", claims["sub"])
					c.Set("role", claims["role"])
				}
			}
			return next(c)
		}
	}
}

// parseClaims validates an HS256 token against the secret and returns its
// claim map.  Any signing-method mismatch or validation failure yields ok
// == false.
func parseClaims(raw, secret string) (jwt.MapClaims, bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	return claims, ok
}
