package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreFormValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(genreForm{Name: "Action"}))
	assert.Error(t, v.Validate(genreForm{Name: ""}), "name is required")
	assert.Error(t, v.Validate(genreForm{Name: "action"}), "name must start uppercase")
	assert.Error(t, v.Validate(genreForm{Name: "A" + strings.Repeat("x", 50)}), "name over 50 runes")
}

func TestRatingFormValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(ratingForm{MovieID: 1, Rating: 1}))
	assert.NoError(t, v.Validate(ratingForm{MovieID: 1, Rating: 5}))
	assert.Error(t, v.Validate(ratingForm{MovieID: 1, Rating: 0}))
	assert.Error(t, v.Validate(ratingForm{MovieID: 1, Rating: 6}))
	assert.Error(t, v.Validate(ratingForm{Rating: 3}), "movieId is required")
}

func TestTheaterFormValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(theaterForm{Name: "Agora", Latitude: 18.47, Longitude: -69.93}))
	assert.Error(t, v.Validate(theaterForm{Name: "Agora", Latitude: 91, Longitude: 0}))
	assert.Error(t, v.Validate(theaterForm{Name: "Agora", Latitude: 0, Longitude: 181}))
	assert.Error(t, v.Validate(theaterForm{Name: "", Latitude: 0, Longitude: 0}))
}

func TestMovieFormValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&movieForm{Title: "Heat"}))
	assert.NoError(t, v.Validate(&movieForm{Title: "Heat", Trailer: "https://youtu.be/abc"}))
	assert.Error(t, v.Validate(&movieForm{Title: ""}))
	assert.Error(t, v.Validate(&movieForm{Title: "Heat", Trailer: "not-a-url"}))
}
