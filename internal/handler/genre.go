package handler // genre handlers: public reads and admin writes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"movies-api/internal/model"
	"movies-api/internal/repository"
)

// genreForm binds the JSON body for genre create/update.  The name rules
// (required, max 50, first letter uppercase) are enforced here at the input
// boundary; the repository never re-validates them.
type genreForm struct {
	Name string `json:"name" validate:"required,max=50,firstupper"`
}

// ListGenres handles GET /v1/genres and returns one page of genres ordered
// by name, with the total count in the totalAmountOfRecords header.
func (h *PublicHandler) ListGenres(c echo.Context) error {
	genres, total, err := h.Genres.List(c.Request().Context(), bindPagination(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	setTotalRecords(c, total)
	return c.JSON(http.StatusOK, genres)
}

// GetGenre handles GET /v1/genres/:id.
func (h *PublicHandler) GetGenre(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.Genres.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, g)
}

// CreateGenre handles POST /v1/genres (admin).
func (h *CatalogHandler) CreateGenre(c echo.Context) error {
	var body genreForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	g := &model.Genre{Name: body.Name}
	if err := h.Genres.Create(c.Request().Context(), g); err != nil {
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "genre name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create genre"})
	}
	return c.JSON(http.StatusCreated, g)
}

// UpdateGenre handles PUT /v1/genres/:id (admin).  The name is fully
// replaced; there are no partial updates.
func (h *CatalogHandler) UpdateGenre(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body genreForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	g := &model.Genre{ID: id, Name: body.Name}
	if err := h.Genres.Update(c.Request().Context(), g); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "genre name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteGenre handles DELETE /v1/genres/:id (admin).  The genre row and its
// movie association rows go together; movies themselves are untouched.
func (h *CatalogHandler) DeleteGenre(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Genres.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
