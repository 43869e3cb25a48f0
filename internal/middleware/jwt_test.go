package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

// run sends a request with the given Authorization header through the
// middleware chain into a probe handler and reports the recorder plus the
// context values the handler observed.
func run(t *testing.T, auth string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{"sub": 42, "role": "ADMIN"})
	rec, c := run(t, "Bearer "+raw, JWTAuth(testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(42), c.Get("user_id"), "numeric claims decode as float64")
	assert.Equal(t, "ADMIN", c.Get("role"))
}

func TestJWTAuthRejects(t *testing.T) {
	expired := signToken(t, testSecret, jwt.MapClaims{"sub": 1, "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"sub": 1})

	cases := []struct {
		name string
		auth string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + wrongKey},
		{"expired", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, c := run(t, tc.auth, JWTAuth(testSecret))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, c.Get("user_id"))
		})
	}
}

func TestOptionalJWT(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		rec, c := run(t, "", OptionalJWT(testSecret))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get("user_id"))
	})
	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		rec, c := run(t, "Bearer garbage", OptionalJWT(testSecret))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get("user_id"))
	})
	t.Run("valid token sets identity", func(t *testing.T) {
		raw := signToken(t, testSecret, jwt.MapClaims{"sub": 7, "role": "CUSTOMER"})
		rec, c := run(t, "Bearer "+raw, OptionalJWT(testSecret))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(7), c.Get("user_id"))
	})
}

func TestRequireRole(t *testing.T) {
	admin := signToken(t, testSecret, jwt.MapClaims{"sub": 1, "role": "ADMIN"})
	customer := signToken(t, testSecret, jwt.MapClaims{"sub": 2, "role": "CUSTOMER"})
	noRole := signToken(t, testSecret, jwt.MapClaims{"sub": 3})

	chain := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("ADMIN")}

	rec, _ := run(t, "Bearer "+admin, chain...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = run(t, "Bearer "+customer, chain...)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = run(t, "Bearer "+noRole, chain...)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
