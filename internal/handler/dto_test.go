package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"movies-api/internal/model"
)

func TestNewMovieDetailResponseSortsCastByRank(t *testing.T) {
	d := &model.MovieDetail{
		Movie: model.Movie{ID: 1, Title: "Heat", ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC)},
		Cast: []model.CastMember{
			{ActorID: 3, Name: "Val Kilmer", Character: "Chris", Rank: 2},
			{ActorID: 1, Name: "Al Pacino", Character: "Vincent", Rank: 0},
			{ActorID: 2, Name: "Robert De Niro", Character: "Neil", Rank: 1},
		},
	}

	resp := newMovieDetailResponse(d, 4.5, 5)

	assert.Equal(t, 4.5, resp.AverageVote)
	assert.Equal(t, uint8(5), resp.UserVote)
	names := make([]string, 0, len(resp.Actors))
	for _, a := range resp.Actors {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro", "Val Kilmer"}, names)
	assert.Equal(t, []int{0, 1, 2}, []int{resp.Actors[0].Order, resp.Actors[1].Order, resp.Actors[2].Order})
}

func TestNewMovieDetailResponseNeverReturnsNilSlices(t *testing.T) {
	resp := newMovieDetailResponse(&model.MovieDetail{Movie: model.Movie{ID: 9}}, 0, 0)

	assert.NotNil(t, resp.Genres)
	assert.NotNil(t, resp.MovieTheaters)
	assert.NotNil(t, resp.Actors)
	assert.Empty(t, resp.Genres)
	assert.Empty(t, resp.MovieTheaters)
	assert.Empty(t, resp.Actors)
}

func TestComplementGenres(t *testing.T) {
	all := []model.Genre{{ID: 1, Name: "Action"}, {ID: 2, Name: "Comedy"}, {ID: 3, Name: "Drama"}}
	selected := []model.Genre{{ID: 2, Name: "Comedy"}}

	rest := complementGenres(all, selected)

	assert.Equal(t, []model.Genre{{ID: 1, Name: "Action"}, {ID: 3, Name: "Drama"}}, rest)
	assert.Empty(t, complementGenres(all, all))
	assert.Equal(t, all, complementGenres(all, nil))
}

func TestComplementTheaters(t *testing.T) {
	all := []model.MovieTheater{{ID: 1, Name: "Agora"}, {ID: 2, Name: "Sambil"}}
	selected := []model.MovieTheater{{ID: 1, Name: "Agora"}}

	rest := complementTheaters(all, selected)

	assert.Equal(t, []model.MovieTheater{{ID: 2, Name: "Sambil"}}, rest)
}
