package router

import (
	"github.com/labstack/echo/v4"

	"movies-api/internal/handler"
	"movies-api/internal/middleware"
)

// RegisterRatings registers the vote endpoint under /v1.  Any authenticated
// identity may vote; no role restriction beyond a valid token.
func RegisterRatings(e *echo.Echo, h *handler.RatingHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/ratings", h.PostRating)
}
