package handler // movie handlers: admin create/update/delete and form contexts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"movies-api/internal/model"
	"movies-api/internal/queue"
	"movies-api/internal/repository"
	"movies-api/internal/storage"
)

// castInput is one entry of the JSON-encoded "actors" form field: which
// actor plays which character.  Rank is implied by position.
type castInput struct {
	ID        uint64 `json:"id"`
	Character string `json:"character"`
}

// movieForm is the decoded multipart form for movie create/update.  The
// admin client sends scalar fields as plain form values, the poster as a
// file part, and the three association collections as JSON-encoded fields.
type movieForm struct {
	Title       string `validate:"required,max=300"`
	Summary     string
	Trailer     string `validate:"omitempty,url"`
	InTheaters  bool
	ReleaseDate time.Time
	GenreIDs    []uint64
	TheaterIDs  []uint64
	Cast        []castInput

	Poster    []byte
	PosterExt string
	HasPoster bool
}

// cast converts the form entries to the repository's write shape.
func (f *movieForm) cast() []model.CastEntry {
	out := make([]model.CastEntry, 0, len(f.Cast))
	for _, ci := range f.Cast {
		out = append(out, model.CastEntry{ActorID: ci.ID, Character: ci.Character})
	}
	return out
}

// bindMovieForm decodes the multipart form.  Association fields are
// optional and default to empty sets, which on update clears the links.
func bindMovieForm(c echo.Context) (*movieForm, error) {
	f := &movieForm{
		Title:   strings.TrimSpace(c.FormValue("title")),
		Summary: c.FormValue("summary"),
		Trailer: strings.TrimSpace(c.FormValue("trailer")),
	}
	if v := c.FormValue("inTheaters"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("inTheaters must be a boolean")
		}
		f.InTheaters = b
	}
	v := c.FormValue("releaseDate")
	if v == "" {
		return nil, errors.New("releaseDate is required")
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, errors.New("releaseDate must be formatted as YYYY-MM-DD")
	}
	f.ReleaseDate = t

	if err := decodeJSONField(c, "genresIds", &f.GenreIDs); err != nil {
		return nil, errors.New("genresIds must be a JSON array of ids")
	}
	if err := decodeJSONField(c, "movieTheatersIds", &f.TheaterIDs); err != nil {
		return nil, errors.New("movieTheatersIds must be a JSON array of ids")
	}
	if err := decodeJSONField(c, "actors", &f.Cast); err != nil {
		return nil, errors.New("actors must be a JSON array of {id, character}")
	}

	data, ext, ok, err := readFormFile(c, "poster")
	if err != nil {
		return nil, errors.New("invalid poster upload")
	}
	f.Poster, f.PosterExt, f.HasPoster = data, ext, ok
	return f, nil
}

// decodeJSONField unmarshals an optional JSON-encoded form value.  An
// absent or empty value leaves the destination untouched.
func decodeJSONField(c echo.Context, field string, dst any) error {
	v := strings.TrimSpace(c.FormValue(field))
	if v == "" {
		return nil
	}
	return json.Unmarshal([]byte(v), dst)
}

// PostGetMovie handles GET /v1/movies/postget (admin): the full genre and
// theater lists for populating the create form.
func (h *CatalogHandler) PostGetMovie(c echo.Context) error {
	ctx := c.Request().Context()
	genres, err := h.Genres.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	theaters, err := h.Theaters.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if genres == nil {
		genres = []model.Genre{}
	}
	if theaters == nil {
		theaters = []model.MovieTheater{}
	}
	return c.JSON(http.StatusOK, creationContextResponse{Genres: genres, MovieTheaters: theaters})
}

// PutGetMovie handles GET /v1/movies/putget/:id (admin): the movie detail
// plus the complement genre/theater sets so the edit form can render "add"
// pickers.
func (h *CatalogHandler) PutGetMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	d, err := h.Movies.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	allGenres, err := h.Genres.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	allTheaters, err := h.Theaters.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	detail := newMovieDetailResponse(d, 0, 0)
	return c.JSON(http.StatusOK, editContextResponse{
		Movie:               detail,
		SelectedGenres:      detail.Genres,
		NonSelectedGenres:   complementGenres(allGenres, detail.Genres),
		SelectedTheaters:    detail.MovieTheaters,
		NonSelectedTheaters: complementTheaters(allTheaters, detail.MovieTheaters),
		Actors:              detail.Actors,
	})
}

// CreateMovie handles POST /v1/movies (admin, multipart).  The poster is
// stored before the transaction so a storage failure aborts the create; if
// the transaction then fails, the fresh poster is removed best-effort.
func (h *CatalogHandler) CreateMovie(c echo.Context) error {
	f, err := bindMovieForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	m := &model.Movie{
		Title:       f.Title,
		Summary:     f.Summary,
		Trailer:     f.Trailer,
		InTheaters:  f.InTheaters,
		ReleaseDate: f.ReleaseDate,
	}
	if f.HasPoster {
		err = h.storeThenWrite(ctx, storage.ContainerMovies, f.PosterExt, f.Poster, "", func(ref string) error {
			m.Poster = ref
			return h.Movies.Create(ctx, m, f.GenreIDs, f.TheaterIDs, f.cast())
		})
	} else {
		err = h.Movies.Create(ctx, m, f.GenreIDs, f.TheaterIDs, f.cast())
	}
	if err != nil {
		switch {
		case errors.Is(err, errAssetStore):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store poster"})
		case repository.IsForeignKey(err):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown genre, theater or actor id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create movie"})
	}

	h.publish(queue.CatalogEvent{Kind: queue.KindMovieCreated, MovieID: m.ID, Title: m.Title})
	return c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /v1/movies/:id (admin, multipart).  Scalar fields
// and all three association sets are fully replaced; the caller must always
// send the complete desired state, never a delta.  A supplied poster only
// displaces the stored one once the row write has committed, so a failed
// update leaves the movie pointing at its existing poster.
func (h *CatalogHandler) UpdateMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	f, err := bindMovieForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	existing, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	m := &model.Movie{
		ID:          id,
		Title:       f.Title,
		Summary:     f.Summary,
		Trailer:     f.Trailer,
		InTheaters:  f.InTheaters,
		ReleaseDate: f.ReleaseDate,
		Poster:      existing.Poster,
	}
	if f.HasPoster {
		err = h.storeThenWrite(ctx, storage.ContainerMovies, f.PosterExt, f.Poster, existing.Poster, func(ref string) error {
			m.Poster = ref
			return h.Movies.Update(ctx, m, f.GenreIDs, f.TheaterIDs, f.cast())
		})
	} else {
		err = h.Movies.Update(ctx, m, f.GenreIDs, f.TheaterIDs, f.cast())
	}
	if err != nil {
		switch {
		case errors.Is(err, errAssetStore):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store poster"})
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		case repository.IsForeignKey(err):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown genre, theater or actor id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	h.publish(queue.CatalogEvent{Kind: queue.KindMovieUpdated, MovieID: m.ID, Title: m.Title})
	return c.JSON(http.StatusOK, m)
}

// DeleteMovie handles DELETE /v1/movies/:id (admin).  The committed row
// deletion is authoritative; a poster-storage failure afterwards is logged
// but never turns an already-deleted movie into an error response.
func (h *CatalogHandler) DeleteMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	existing, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if err := h.Files.Delete(ctx, existing.Poster, storage.ContainerMovies); err != nil {
		h.Log.Warn("poster delete failed", zap.String("ref", existing.Poster), zap.Error(err))
	}

	h.publish(queue.CatalogEvent{Kind: queue.KindMovieDeleted, MovieID: id, Title: existing.Title})
	return c.NoContent(http.StatusNoContent)
}

// publish stamps and sends an audit event; failures are already logged by
// the publisher and intentionally dropped here.
func (h *CatalogHandler) publish(ev queue.CatalogEvent) {
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	_ = h.Events.Publish(context.Background(), ev)
}
