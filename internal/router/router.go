package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"movies-api/internal/config"
	"movies-api/internal/handler"
	"movies-api/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication: the health
// check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the anonymous browse endpoints under /v1.  The
// whole group is response-cached and rate limited through Redis; both
// middlewares degrade to pass-through when rdb is nil.  The movie detail
// route is the one exception to caching: its payload is personalised with
// the caller's own vote, so it only gets OptionalJWT and the rate limiter.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, jwtSecret string, rdb *redis.Client) {
	limiter := middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	g := e.Group("/v1", limiter)

	cached := g.Group("", cache)
	// Home feed: two capped lists for the landing page.
	cached.GET("/movies", p.Home)
	// Filtered search with pagination metadata in the response header.
	cached.GET("/movies/filter", p.FilterMovies)
	// Genre and theater browsing for pickers and public pages.
	cached.GET("/genres", p.ListGenres)
	cached.GET("/genres/:id", p.GetGenre)
	cached.GET("/movietheaters", p.ListTheaters)
	cached.GET("/movietheaters/:id", p.GetTheater)

	// Detail responses differ per caller (userVote), so no shared cache.
	g.GET("/movies/:id", p.GetMovie, middleware.OptionalJWT(jwtSecret))
}
