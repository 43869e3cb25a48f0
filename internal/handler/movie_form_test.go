package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartContext builds an echo.Context carrying a multipart POST with the
// given form fields and an optional file part.
func multipartContext(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) echo.Context {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/movies", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindMovieForm(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":            "  Heat  ",
		"summary":          "Two crews collide.",
		"trailer":          "https://youtu.be/abc",
		"inTheaters":       "true",
		"releaseDate":      "1995-12-15",
		"genresIds":        "[1,2,2]",
		"movieTheatersIds": "[4]",
		"actors":           `[{"id":7,"character":"Neil"},{"id":8,"character":"Vincent"}]`,
	}, "poster", "heat.JPG", []byte("fake-image"))

	f, err := bindMovieForm(c)
	require.NoError(t, err)

	assert.Equal(t, "Heat", f.Title)
	assert.Equal(t, "Two crews collide.", f.Summary)
	assert.True(t, f.InTheaters)
	assert.Equal(t, "1995-12-15", f.ReleaseDate.Format("2006-01-02"))
	assert.Equal(t, []uint64{1, 2, 2}, f.GenreIDs)
	assert.Equal(t, []uint64{4}, f.TheaterIDs)
	assert.Equal(t, []castInput{{ID: 7, Character: "Neil"}, {ID: 8, Character: "Vincent"}}, f.Cast)
	assert.True(t, f.HasPoster)
	assert.Equal(t, []byte("fake-image"), f.Poster)
	assert.Equal(t, ".jpg", f.PosterExt)
}

func TestBindMovieFormMinimal(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":       "Heat",
		"releaseDate": "1995-12-15",
	}, "", "", nil)

	f, err := bindMovieForm(c)
	require.NoError(t, err)

	assert.False(t, f.HasPoster)
	assert.False(t, f.InTheaters)
	assert.Empty(t, f.GenreIDs)
	assert.Empty(t, f.TheaterIDs)
	assert.Empty(t, f.Cast)
}

func TestBindMovieFormRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
	}{
		{"missing release date", map[string]string{"title": "Heat"}},
		{"malformed release date", map[string]string{"title": "Heat", "releaseDate": "12/15/1995"}},
		{"non-boolean inTheaters", map[string]string{"title": "Heat", "releaseDate": "1995-12-15", "inTheaters": "maybe"}},
		{"malformed genre ids", map[string]string{"title": "Heat", "releaseDate": "1995-12-15", "genresIds": "not-json"}},
		{"malformed cast", map[string]string{"title": "Heat", "releaseDate": "1995-12-15", "actors": "{broken"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bindMovieForm(multipartContext(t, tc.fields, "", "", nil))
			assert.Error(t, err)
		})
	}
}

func TestMovieFormCast(t *testing.T) {
	f := &movieForm{Cast: []castInput{{ID: 3, Character: "Chris"}}}
	entries := f.cast()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(3), entries[0].ActorID)
	assert.Equal(t, "Chris", entries[0].Character)
}
