package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps assets on the local filesystem under root/<container>/ and
// serves them via a static route, so references are baseURL/<container>/<name>.
// It is the development and single-node deployment store; a cloud store can
// replace it behind the FileStore interface without touching handlers.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore constructs a DiskStore rooted at root.  baseURL is the public
// prefix under which the root directory is served.
func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes data into the container under a random name and returns the
// public reference.  The container directory is created on demand.
func (s *DiskStore) Save(_ context.Context, container, ext string, data []byte) (string, error) {
	dir := filepath.Join(s.root, container)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}
	name := uuid.NewString() + normalizeExt(ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s/%s: %w", container, name, err)
	}
	return s.baseURL + "/" + container + "/" + name, nil
}

// Delete removes the file a reference points at.  Empty references and
// already-missing files are treated as success.
func (s *DiskStore) Delete(_ context.Context, ref, container string) error {
	if ref == "" {
		return nil
	}
	name := filepath.Base(ref)
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return fmt.Errorf("storage: invalid reference %q", ref)
	}
	err := os.Remove(filepath.Join(s.root, container, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove %s/%s: %w", container, name, err)
	}
	return nil
}

// normalizeExt lower-cases an extension and guarantees a leading dot; an
// empty extension stays empty.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
