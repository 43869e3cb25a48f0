package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"movies-api/internal/model"
	"movies-api/internal/queue"
	"movies-api/internal/repository"
	"movies-api/internal/service"
)

// RatingHandler handles vote submission.  Any authenticated caller may
// vote; one vote per (movie, user) pair, later votes overwrite.
type RatingHandler struct {
	Movies  *repository.MovieRepo
	Ratings *repository.RatingRepo
	Events  *service.Publisher
}

// NewRatingHandler constructs a RatingHandler and panics on nil
// dependencies.
func NewRatingHandler(movies *repository.MovieRepo, ratings *repository.RatingRepo, events *service.Publisher) *RatingHandler {
	if movies == nil || ratings == nil || events == nil {
		panic("nil dependency passed to NewRatingHandler")
	}
	return &RatingHandler{Movies: movies, Ratings: ratings, Events: events}
}

// ratingForm binds the JSON body for a vote.  The 1..5 range is enforced
// here; the repository does not re-validate it.
type ratingForm struct {
	MovieID uint64 `json:"movieId" validate:"required"`
	Rating  uint8  `json:"rating" validate:"required,min=1,max=5"`
}

// PostRating handles POST /v1/ratings.  The movie must exist; the vote is
// then upserted for the authenticated caller.  Repeating the same vote is a
// no-op, so the endpoint is safe to retry.
func (h *RatingHandler) PostRating(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body ratingForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, body.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Ratings.Upsert(ctx, model.Rating{MovieID: body.MovieID, UserID: userID, Score: body.Rating}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save rating"})
	}

	_ = h.Events.Publish(context.Background(), queue.CatalogEvent{
		Kind:       queue.KindRatingUpserted,
		MovieID:    body.MovieID,
		UserID:     userID,
		Score:      body.Rating,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.NoContent(http.StatusNoContent)
}
