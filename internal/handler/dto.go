package handler

// dto.go holds the response shapes for public reads and the pure transform
// functions that build them from repository results.  Each transform is an
// explicit field-by-field constructor so the wire format never leaks
// storage concerns.

import (
	"sort"
	"time"

	"movies-api/internal/model"
)

// castResponse is one cast entry in a movie detail response, ordered by the
// rank assigned at write time.
type castResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// movieDetailResponse is the full public shape of a movie.
type movieDetailResponse struct {
	ID            uint64               `json:"id"`
	Title         string               `json:"title"`
	Summary       string               `json:"summary"`
	Trailer       string               `json:"trailer"`
	InTheaters    bool                 `json:"inTheaters"`
	ReleaseDate   time.Time            `json:"releaseDate"`
	Poster        string               `json:"poster"`
	AverageVote   float64              `json:"averageVote"`
	UserVote      uint8                `json:"userVote"`
	Genres        []model.Genre        `json:"genres"`
	MovieTheaters []model.MovieTheater `json:"movieTheaters"`
	Actors        []castResponse       `json:"actors"`
}

// homeResponse carries the two independent landing lists.  A movie may
// appear in both when its flags and dates say so; no deduplication.
type homeResponse struct {
	UpcomingReleases []model.Movie `json:"upcomingReleases"`
	InTheaters       []model.Movie `json:"inTheaters"`
}

// creationContextResponse feeds the admin create form: every genre and
// theater, sorted by name, unpaginated.
type creationContextResponse struct {
	Genres        []model.Genre        `json:"genres"`
	MovieTheaters []model.MovieTheater `json:"movieTheaters"`
}

// editContextResponse feeds the admin edit form: the movie detail plus the
// selected/non-selected split for genres and theaters so the client can
// render "add" pickers.
type editContextResponse struct {
	Movie               movieDetailResponse  `json:"movie"`
	SelectedGenres      []model.Genre        `json:"selectedGenres"`
	NonSelectedGenres   []model.Genre        `json:"nonSelectedGenres"`
	SelectedTheaters    []model.MovieTheater `json:"selectedMovieTheaters"`
	NonSelectedTheaters []model.MovieTheater `json:"nonSelectedMovieTheaters"`
	Actors              []castResponse       `json:"actors"`
}

// newMovieDetailResponse maps a loaded detail plus vote data to the public
// shape.  The cast is sorted by rank regardless of how the rows came back,
// and association slices are always non-nil so clients see [] rather than
// null.
func newMovieDetailResponse(d *model.MovieDetail, avg float64, userVote uint8) movieDetailResponse {
	actors := make([]castResponse, 0, len(d.Cast))
	for _, cm := range d.Cast {
		actors = append(actors, castResponse{
			ID:        cm.ActorID,
			Name:      cm.Name,
			Picture:   cm.Picture,
			Character: cm.Character,
			Order:     cm.Rank,
		})
	}
	sort.SliceStable(actors, func(i, j int) bool { return actors[i].Order < actors[j].Order })

	genres := d.Genres
	if genres == nil {
		genres = []model.Genre{}
	}
	theaters := d.Theaters
	if theaters == nil {
		theaters = []model.MovieTheater{}
	}

	return movieDetailResponse{
		ID:            d.ID,
		Title:         d.Title,
		Summary:       d.Summary,
		Trailer:       d.Trailer,
		InTheaters:    d.InTheaters,
		ReleaseDate:   d.ReleaseDate,
		Poster:        d.Poster,
		AverageVote:   avg,
		UserVote:      userVote,
		Genres:        genres,
		MovieTheaters: theaters,
		Actors:        actors,
	}
}

// complementGenres returns the genres from all that are not in selected,
// preserving the order of all.
func complementGenres(all, selected []model.Genre) []model.Genre {
	chosen := make(map[uint64]bool, len(selected))
	for _, g := range selected {
		chosen[g.ID] = true
	}
	out := make([]model.Genre, 0, len(all))
	for _, g := range all {
		if !chosen[g.ID] {
			out = append(out, g)
		}
	}
	return out
}

// complementTheaters returns the theaters from all that are not in
// selected, preserving the order of all.
func complementTheaters(all, selected []model.MovieTheater) []model.MovieTheater {
	chosen := make(map[uint64]bool, len(selected))
	for _, t := range selected {
		chosen[t.ID] = true
	}
	out := make([]model.MovieTheater, 0, len(all))
	for _, t := range all {
		if !chosen[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
