package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movies-api/internal/storage"
)

type fakeFileStore struct {
	saveRef string
	saveErr error
	deleted []string
}

func (f *fakeFileStore) Save(_ context.Context, _, _ string, _ []byte) (string, error) {
	return f.saveRef, f.saveErr
}

func (f *fakeFileStore) Delete(_ context.Context, ref, _ string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

func assetHandler(fs storage.FileStore) *CatalogHandler {
	return &CatalogHandler{Files: fs, Log: zap.NewNop()}
}

func TestStoreThenWriteRemovesOldFileAfterCommit(t *testing.T) {
	fs := &fakeFileStore{saveRef: "http://files/movies/new.jpg"}
	h := assetHandler(fs)

	var written string
	err := h.storeThenWrite(context.Background(), storage.ContainerMovies, ".jpg", []byte("x"),
		"http://files/movies/old.jpg", func(ref string) error {
			written = ref
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, fs.saveRef, written, "the write sees the fresh reference")
	assert.Equal(t, []string{"http://files/movies/old.jpg"}, fs.deleted,
		"only the superseded file is removed, and only after the write")
}

func TestStoreThenWriteFailedWriteDropsFreshFileKeepsOld(t *testing.T) {
	fs := &fakeFileStore{saveRef: "http://files/movies/new.jpg"}
	h := assetHandler(fs)

	writeErr := errors.New("fk violation")
	err := h.storeThenWrite(context.Background(), storage.ContainerMovies, ".jpg", []byte("x"),
		"http://files/movies/old.jpg", func(string) error { return writeErr })

	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, []string{"http://files/movies/new.jpg"}, fs.deleted,
		"the fresh file is cleaned up; the old one stays referenced by the row")
}

func TestStoreThenWriteCreateHasNothingToSupersede(t *testing.T) {
	fs := &fakeFileStore{saveRef: "http://files/actors/a.png"}
	h := assetHandler(fs)

	err := h.storeThenWrite(context.Background(), storage.ContainerActors, ".png", []byte("x"), "",
		func(string) error { return nil })

	require.NoError(t, err)
	assert.Empty(t, fs.deleted)
}

func TestStoreThenWriteSaveFailureSkipsWrite(t *testing.T) {
	fs := &fakeFileStore{saveErr: errors.New("disk full")}
	h := assetHandler(fs)

	called := false
	err := h.storeThenWrite(context.Background(), storage.ContainerActors, ".png", []byte("x"), "",
		func(string) error { called = true; return nil })

	assert.ErrorIs(t, err, errAssetStore)
	assert.False(t, called, "no row write without a stored file")
	assert.Empty(t, fs.deleted)
}
