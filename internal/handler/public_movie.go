// Public movie browsing: home feed, filtered search and movie detail.
// These routes serve anonymous traffic; the detail endpoint additionally
// personalises the caller's own vote when a valid token is present.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"movies-api/internal/model"
	"movies-api/internal/repository"
)

// Home handles GET /v1/movies: the two landing lists, six entries each.
func (h *PublicHandler) Home(c echo.Context) error {
	upcoming, inTheaters, err := h.Movies.Home(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if upcoming == nil {
		upcoming = []model.Movie{}
	}
	if inTheaters == nil {
		inTheaters = []model.Movie{}
	}
	return c.JSON(http.StatusOK, homeResponse{UpcomingReleases: upcoming, InTheaters: inTheaters})
}

// FilterMovies handles GET /v1/movies/filter.  Every supplied criterion
// narrows the result; omitted or zero criteria impose no filter.  Results
// come back ordered by title and paginated, with the total match count in
// the totalAmountOfRecords header.
func (h *PublicHandler) FilterMovies(c echo.Context) error {
	f := repository.MovieFilter{
		Title: strings.TrimSpace(c.QueryParam("title")),
	}
	if v := c.QueryParam("inTheaters"); v != "" {
		f.InTheaters, _ = strconv.ParseBool(v)
	}
	if v := c.QueryParam("upcomingReleases"); v != "" {
		f.UpcomingReleases, _ = strconv.ParseBool(v)
	}
	if v := c.QueryParam("genreId"); v != "" {
		f.GenreID, _ = strconv.ParseUint(v, 10, 64)
	}

	movies, total, err := h.Movies.Search(c.Request().Context(), f, bindPagination(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	setTotalRecords(c, total)
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /v1/movies/:id.  All three association kinds are
// materialized before mapping, the cast is ordered by rank, and averageVote
// is always computed.  userVote is the caller's own vote when the request
// carries a valid token and 0 for anonymous callers.
func (h *PublicHandler) GetMovie(c echo.Context) error {
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

	avg, err := h.Ratings.Average(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var userVote uint8
	if userID, err := getUserID(c); err == nil {
		if userVote, err = h.Ratings.UserScore(ctx, id, userID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}

	return c.JSON(http.StatusOK, newMovieDetailResponse(d, avg, userVote))
}
