package handler // movie theater handlers: public reads and admin writes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"movies-api/internal/model"
	"movies-api/internal/repository"
)

// theaterForm binds the JSON body for theater create/update.  Coordinates
// are validated as WGS84 at the boundary.
type theaterForm struct {
	Name      string  `json:"name" validate:"required,max=75"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ListTheaters handles GET /v1/movietheaters and returns all theaters
// ordered by name.  The list is small by nature and not paginated.
func (h *PublicHandler) ListTheaters(c echo.Context) error {
	theaters, err := h.Theaters.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if theaters == nil {
		theaters = []model.MovieTheater{}
	}
	return c.JSON(http.StatusOK, theaters)
}

// GetTheater handles GET /v1/movietheaters/:id.
func (h *PublicHandler) GetTheater(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Theaters.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTheater handles POST /v1/movietheaters (admin).
func (h *CatalogHandler) CreateTheater(c echo.Context) error {
	var body theaterForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	t := &model.MovieTheater{Name: body.Name, Latitude: body.Latitude, Longitude: body.Longitude}
	if err := h.Theaters.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create movie theater"})
	}
	return c.JSON(http.StatusCreated, t)
}

// UpdateTheater handles PUT /v1/movietheaters/:id (admin).  All scalar
// fields are replaced.
func (h *CatalogHandler) UpdateTheater(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body theaterForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	t := &model.MovieTheater{ID: id, Name: body.Name, Latitude: body.Latitude, Longitude: body.Longitude}
	if err := h.Theaters.Update(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteTheater handles DELETE /v1/movietheaters/:id (admin).
func (h *CatalogHandler) DeleteTheater(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Theaters.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
