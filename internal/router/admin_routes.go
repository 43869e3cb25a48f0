package router

import (
	"github.com/labstack/echo/v4"

	"movies-api/internal/handler"
	"movies-api/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped catalog management endpoints under
// /v1.  All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Movies ----
	g.GET("/movies/postget", h.PostGetMovie)     // create-form context (all genres + theaters)
	g.GET("/movies/putget/:id", h.PutGetMovie)   // edit-form context (detail + complement sets)
	g.POST("/movies", h.CreateMovie)             // multipart: fields + poster + association JSON
	g.PUT("/movies/:id", h.UpdateMovie)          // full replace of fields and associations
	g.DELETE("/movies/:id", h.DeleteMovie)

	// ---- Genres ----
	g.POST("/genres", h.CreateGenre)
	g.PUT("/genres/:id", h.UpdateGenre)
	g.DELETE("/genres/:id", h.DeleteGenre)

	// ---- Actors ----
	g.GET("/actors", h.ListActors)
	g.GET("/actors/:id", h.GetActor)
	g.POST("/actors/searchByName", h.SearchActorsByName) // cast picker typeahead
	g.POST("/actors", h.CreateActor)
	g.PUT("/actors/:id", h.UpdateActor)
	g.DELETE("/actors/:id", h.DeleteActor)

	// ---- Movie theaters ----
	g.POST("/movietheaters", h.CreateTheater)
	g.PUT("/movietheaters/:id", h.UpdateTheater)
	g.DELETE("/movietheaters/:id", h.DeleteTheater)
}
