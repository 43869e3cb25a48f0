package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"movies-api/internal/config"
	"movies-api/internal/database"
	"movies-api/internal/handler"
	"movies-api/internal/queue"
	"movies-api/internal/repository"
	"movies-api/internal/router"
	"movies-api/internal/service"
	"movies-api/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		logger.Warn("redis unavailable; response cache and rate limiting disabled")
	}

	files := storage.NewDiskStore(cfg.StorageRoot, cfg.StorageBaseURL)
	events := service.NewPublisher(logger)

	genres := repository.NewGenreRepo(db)
	actors := repository.NewActorRepo(db)
	theaters := repository.NewTheaterRepo(db)
	movies := repository.NewMovieRepo(db)
	ratings := repository.NewRatingRepo(db)

	catalog := handler.NewCatalogHandler(genres, actors, theaters, movies, files, events, logger)
	public := handler.NewPublicHandler(genres, theaters, movies, ratings)
	rating := handler.NewRatingHandler(movies, ratings, events)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	// Stored posters/pictures are served straight off the storage root.
	e.Static("/files", cfg.StorageRoot)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, public, cfg.JWTSecret, rdb)
	router.RegisterAdmin(e, catalog, cfg.JWTSecret)
	router.RegisterRatings(e, rating, cfg.JWTSecret)

	// Audit-trail consumer; runs its own reconnect loop for process lifetime.
	go queue.StartCatalogConsumer(logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newLogger picks the zap preset by environment: human-readable in dev,
// JSON elsewhere.
func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
