package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The vote statement must resolve a repeated (movie, user) pair to an
// overwrite of the score, never a second row; that is what makes the
// endpoint safe to retry.
func TestUpsertRatingOverwritesExistingVote(t *testing.T) {
	assert.Contains(t, upsertRatingSQL, "INSERT INTO ratings (movie_id, user_id, score)")
	assert.Contains(t, upsertRatingSQL, "ON DUPLICATE KEY UPDATE score = VALUES(score)")
}

// A movie without ratings averages to 0 rather than NULL.
func TestAverageRatingDefaultsToZero(t *testing.T) {
	assert.Contains(t, averageRatingSQL, "COALESCE(AVG(score), 0)")
	assert.Contains(t, averageRatingSQL, "WHERE movie_id = ?")
}

func TestUserScoreSelectsExactlyOnePair(t *testing.T) {
	assert.Contains(t, userScoreSQL, "WHERE movie_id = ? AND user_id = ?")
}
