package middleware

// identity.go provides the identity lookup shared by the caching and rate
// limiting middleware.  It reads the claims that JWTAuth/OptionalJWT leave
// in context; anonymous requests resolve to "guest".

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// identityKey returns a stable per-caller string for keying rate limit
// buckets: the user id when authenticated, "guest" otherwise.
func identityKey(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "guest"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	}
	return "guest"
}
