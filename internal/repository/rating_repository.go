package repository

import (
	"context"
	"database/sql"
	"errors"

	"movies-api/internal/model"
)

// RatingRepo encapsulates all database queries related to user ratings.
// The ratings table carries a unique key over (movie_id, user_id), which
// makes the upsert race-free: concurrent writes for the same pair resolve
// to last-write-wins with no duplicate rows.
type RatingRepo struct {
	db *sql.DB
}

// NewRatingRepo constructs a RatingRepo with the provided DB handle.
func NewRatingRepo(db *sql.DB) *RatingRepo {
	return &RatingRepo{db: db}
}

const (
	upsertRatingSQL = `INSERT INTO ratings (movie_id, user_id, score)
	                   VALUES (?, ?, ?)
	                   ON DUPLICATE KEY UPDATE score = VALUES(score)`
	averageRatingSQL = "SELECT COALESCE(AVG(score), 0) FROM ratings WHERE movie_id = ?"
	userScoreSQL     = "SELECT score FROM ratings WHERE movie_id = ? AND user_id = ?"
)

// Upsert records a user's vote for a movie.  A first vote inserts a row; a
// repeated vote overwrites the score in place.  Repeating the same score is
// a no-op effect-wise, so the call is safe to retry.  Score range checking
// is an input-boundary concern and is not repeated here.
func (r *RatingRepo) Upsert(ctx context.Context, rt model.Rating) error {
	_, err := r.db.ExecContext(ctx, upsertRatingSQL, rt.MovieID, rt.UserID, rt.Score)
	return err
}

// Average returns the mean score for a movie, or 0 when the movie has no
// ratings.  Callers that need to distinguish "no ratings" from a literal
// zero must perform a separate existence check.
func (r *RatingRepo) Average(ctx context.Context, movieID uint64) (float64, error) {
	var avg float64
	if err := r.db.QueryRowContext(ctx, averageRatingSQL, movieID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// UserScore returns the caller's own prior vote for a movie, or 0 when they
// have not voted.
func (r *RatingRepo) UserScore(ctx context.Context, movieID, userID uint64) (uint8, error) {
	var score uint8
	if err := r.db.QueryRowContext(ctx, userScoreSQL, movieID, userID).Scan(&score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}
