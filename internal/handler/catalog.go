package handler

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"movies-api/internal/repository"
	"movies-api/internal/service"
	"movies-api/internal/storage"
)

// CatalogHandler bundles the dependencies for admin-scoped catalog writes:
// the per-entity repositories, the file store for posters/pictures, and the
// audit event publisher.
type CatalogHandler struct {
	Genres   *repository.GenreRepo
	Actors   *repository.ActorRepo
	Theaters *repository.TheaterRepo
	Movies   *repository.MovieRepo
	Files    storage.FileStore
	Events   *service.Publisher
	Log      *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler and panics if any dependency
// is nil; wiring bugs should fail at startup, not per request.
func NewCatalogHandler(genres *repository.GenreRepo, actors *repository.ActorRepo, theaters *repository.TheaterRepo, movies *repository.MovieRepo, files storage.FileStore, events *service.Publisher, log *zap.Logger) *CatalogHandler {
	if genres == nil || actors == nil || theaters == nil || movies == nil || files == nil || events == nil || log == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	return &CatalogHandler{
		Genres:   genres,
		Actors:   actors,
		Theaters: theaters,
		Movies:   movies,
		Files:    files,
		Events:   events,
		Log:      log,
	}
}

// PublicHandler bundles the repositories needed for unauthenticated
// browsing: home feed, filtered search, movie detail, genre and theater
// reads.
type PublicHandler struct {
	Genres   *repository.GenreRepo
	Theaters *repository.TheaterRepo
	Movies   *repository.MovieRepo
	Ratings  *repository.RatingRepo
}

// NewPublicHandler constructs a PublicHandler and panics on nil
// dependencies.
func NewPublicHandler(genres *repository.GenreRepo, theaters *repository.TheaterRepo, movies *repository.MovieRepo, ratings *repository.RatingRepo) *PublicHandler {
	if genres == nil || theaters == nil || movies == nil || ratings == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Genres: genres, Theaters: theaters, Movies: movies, Ratings: ratings}
}

// readFormFile pulls an optional uploaded file out of the multipart form.
// ok is false when the field is absent, which is not an error: posters and
// pictures are optional on create and mean "keep the current one" on
// update.
func readFormFile(c echo.Context, field string) (data []byte, ext string, ok bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", false, nil
	}
	data, err = readMultipartFile(fh)
	if err != nil {
		return nil, "", false, err
	}
	return data, filepath.Ext(fh.Filename), true, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
