package handler // actor handlers: admin CRUD plus the cast picker search

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"movies-api/internal/model"
	"movies-api/internal/repository"
	"movies-api/internal/storage"
)

// actorForm binds the multipart form for actor create/update.  The picture
// arrives as a separate file part and is read by the handler.
type actorForm struct {
	Name        string `form:"name" validate:"required,max=120"`
	Biography   string `form:"biography"`
	DateOfBirth string `form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

func (f actorForm) dateOfBirth() *time.Time {
	if f.DateOfBirth == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", f.DateOfBirth)
	if err != nil {
		return nil
	}
	return &t
}

// ListActors handles GET /v1/actors (admin) with pagination and the
// totalAmountOfRecords header.
func (h *CatalogHandler) ListActors(c echo.Context) error {
	actors, total, err := h.Actors.List(c.Request().Context(), bindPagination(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	setTotalRecords(c, total)
	return c.JSON(http.StatusOK, actors)
}

// GetActor handles GET /v1/actors/:id (admin).
func (h *CatalogHandler) GetActor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.Actors.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "actor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, a)
}

// SearchActorsByName handles POST /v1/actors/searchByName (admin).  The
// body is a bare JSON string; an empty or blank name yields an empty list
// rather than an error so the typeahead can be called on every keystroke.
func (h *CatalogHandler) SearchActorsByName(c echo.Context) error {
	var name string
	if err := c.Bind(&name); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return c.JSON(http.StatusOK, []model.Actor{})
	}
	actors, err := h.Actors.SearchByName(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, actors)
}

// CreateActor handles POST /v1/actors (admin, multipart).  When a picture
// file is supplied it is stored first; a storage failure aborts the whole
// create so no actor row ever points at a missing file.
func (h *CatalogHandler) CreateActor(c echo.Context) error {
	var body actorForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	data, ext, hasPicture, err := readFormFile(c, "picture")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid picture upload"})
	}

	a := &model.Actor{
		Name:        body.Name,
		Biography:   body.Biography,
		DateOfBirth: body.dateOfBirth(),
	}
	if hasPicture {
		err = h.storeThenWrite(ctx, storage.ContainerActors, ext, data, "", func(ref string) error {
			a.Picture = ref
			return h.Actors.Create(ctx, a)
		})
	} else {
		err = h.Actors.Create(ctx, a)
	}
	if err != nil {
		if errors.Is(err, errAssetStore) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store picture"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create actor"})
	}
	return c.JSON(http.StatusCreated, a)
}

// UpdateActor handles PUT /v1/actors/:id (admin, multipart).  Scalar fields
// are fully replaced; a supplied picture replaces the stored one, an absent
// picture keeps it.
func (h *CatalogHandler) UpdateActor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body actorForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	existing, err := h.Actors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "actor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	data, ext, hasPicture, err := readFormFile(c, "picture")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid picture upload"})
	}

	a := &model.Actor{
		ID:          id,
		Name:        body.Name,
		Biography:   body.Biography,
		DateOfBirth: body.dateOfBirth(),
		Picture:     existing.Picture,
	}
	if hasPicture {
		// The stored picture is only displaced after the row write commits.
		err = h.storeThenWrite(ctx, storage.ContainerActors, ext, data, existing.Picture, func(ref string) error {
			a.Picture = ref
			return h.Actors.Update(ctx, a)
		})
	} else {
		err = h.Actors.Update(ctx, a)
	}
	if err != nil {
		switch {
		case errors.Is(err, errAssetStore):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store picture"})
		case errors.Is(err, repository.ErrActorNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "actor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, a)
}

// DeleteActor handles DELETE /v1/actors/:id (admin).  The row deletion is
// authoritative; a failure removing the stored picture afterwards is logged
// but does not fail the request.
func (h *CatalogHandler) DeleteActor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	existing, err := h.Actors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "actor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Actors.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "actor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if err := h.Files.Delete(ctx, existing.Picture, storage.ContainerActors); err != nil {
		h.Log.Warn("actor picture delete failed", zap.String("ref", existing.Picture), zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}
