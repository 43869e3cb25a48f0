package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMovieFilterEmpty(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{})
	assert.Equal(t, "1=1", cond)
	assert.Empty(t, args)
}

func TestBuildMovieFilterTitle(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{Title: "Ring"})
	assert.Equal(t, "LOWER(m.title) LIKE ?", cond)
	assert.Equal(t, []any{"%ring%"}, args)
}

func TestBuildMovieFilterFlags(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{InTheaters: true, UpcomingReleases: true})
	assert.Equal(t, "m.in_theaters = 1 AND m.release_date > CURDATE()", cond)
	assert.Empty(t, args)
}

func TestBuildMovieFilterConjunction(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{Title: "The", InTheaters: true, GenreID: 7})
	assert.Equal(t,
		"LOWER(m.title) LIKE ? AND m.in_theaters = 1 AND "+
			"EXISTS (SELECT 1 FROM movies_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ?)",
		cond)
	assert.Equal(t, []any{"%the%", uint64(7)}, args)
}

func TestBuildMovieFilterZeroGenreImposesNoFilter(t *testing.T) {
	cond, args := buildMovieFilter(MovieFilter{GenreID: 0})
	assert.Equal(t, "1=1", cond)
	assert.Empty(t, args)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []uint64{3, 1, 2}, dedupe([]uint64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupe(nil))
}
