package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// keyFor builds a context the way the router does for a parameterized route:
// the registered pattern is set on the context while the request carries the
// concrete URL.
func keyFor(target, route string) string {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return cacheKey("cache", c)
}

func TestCacheKeySeparatesRouteParamValues(t *testing.T) {
	k1 := keyFor("/v1/genres/1", "/v1/genres/:id")
	k2 := keyFor("/v1/genres/2", "/v1/genres/:id")

	assert.NotEqual(t, k1, k2, "different ids must not share a cache entry")
	assert.Equal(t, k1, keyFor("/v1/genres/1", "/v1/genres/:id"), "same URL hashes to the same key")
}

func TestCacheKeySeparatesQueries(t *testing.T) {
	k1 := keyFor("/v1/movies/filter?page=1", "/v1/movies/filter")
	k2 := keyFor("/v1/movies/filter?page=2", "/v1/movies/filter")

	assert.NotEqual(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "cache:"))
}
