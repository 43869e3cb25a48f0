package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"movies-api/internal/config"
)

// cacheEntry is the stored form of a cached response.  Total preserves the
// totalAmountOfRecords header that paginated list endpoints set alongside
// the body.
type cacheEntry struct {
	Total string          `json:"total,omitempty"`
	Body  json.RawMessage `json:"body"`
}

// bodyCapture duplicates the response body into a buffer while forwarding
// it to the client, up to a byte limit.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.buf.Len() < w.limit {
		room := w.limit - w.buf.Len()
		if len(b) <= room {
			w.buf.Write(b)
		} else {
			w.buf.Write(b[:room])
		}
	}
	return w.ResponseWriter.Write(b)
}

// NewResponseCache caches successful JSON GET responses in Redis keyed by
// route + raw query.  It only serves the public browse endpoints, where
// every caller sees the same payload; personalised or authenticated routes
// must not be wrapped with it.  A nil Redis client disables the middleware.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
				var entry cacheEntry
				if err := json.Unmarshal(raw, &entry); err == nil && len(entry.Body) > 0 {
					if entry.Total != "" {
						c.Response().Header().Set("totalAmountOfRecords", entry.Total)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					return c.JSONBlob(http.StatusOK, entry.Body)
				}
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 responses are cached; truncated captures are
			// dropped so a hit never serves a partial body.
			if cw.status == http.StatusOK && cw.buf.Len() < cfg.MaxBodyBytes {
				entry := cacheEntry{
					Total: c.Response().Header().Get("totalAmountOfRecords"),
					Body:  json.RawMessage(cw.buf.Bytes()),
				}
				if raw, err := json.Marshal(entry); err == nil {
					_ = rdb.SetEx(context.Background(), key, raw, ttl).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes the concrete request path + query into a fixed-length
// namespaced key.  The request URL is used rather than the registered route,
// which for parameterized routes like /v1/genres/:id would collapse every id
// onto one entry.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
