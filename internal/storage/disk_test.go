package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*DiskStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewDiskStore(root, "http://localhost:8080/files/"), root
}

func TestDiskStoreSave(t *testing.T) {
	s, root := newTestStore(t)

	ref, err := s.Save(context.Background(), ContainerMovies, "PNG", []byte("poster-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "http://localhost:8080/files/movies/"), ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "extension is lower-cased with a dot")

	data, err := os.ReadFile(filepath.Join(root, ContainerMovies, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, []byte("poster-bytes"), data)
}

func TestDiskStoreSaveGeneratesUniqueRefs(t *testing.T) {
	s, root := newTestStore(t)
	ctx := context.Background()

	oldRef, err := s.Save(ctx, ContainerActors, ".jpg", []byte("old"))
	require.NoError(t, err)
	newRef, err := s.Save(ctx, ContainerActors, ".jpg", []byte("new"))
	require.NoError(t, err)
	assert.NotEqual(t, oldRef, newRef)

	// Both files coexist until a caller decides which one to drop.
	for ref, want := range map[string]string{oldRef: "old", newRef: "new"} {
		data, err := os.ReadFile(filepath.Join(root, ContainerActors, filepath.Base(ref)))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestDiskStoreDelete(t *testing.T) {
	s, root := newTestStore(t)
	ctx := context.Background()

	ref, err := s.Save(ctx, ContainerMovies, ".webp", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, ref, ContainerMovies))
	_, err = os.Stat(filepath.Join(root, ContainerMovies, filepath.Base(ref)))
	assert.True(t, os.IsNotExist(err))

	// Empty refs and already-missing files are success, traversal is not.
	assert.NoError(t, s.Delete(ctx, "", ContainerMovies))
	assert.NoError(t, s.Delete(ctx, ref, ContainerMovies))
	assert.Error(t, s.Delete(ctx, "http://evil/..", ContainerMovies))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".png", normalizeExt("PNG"))
	assert.Equal(t, ".jpg", normalizeExt(".jpg"))
	assert.Equal(t, ".gif", normalizeExt("  .GIF "))
	assert.Equal(t, "", normalizeExt(""))
}
