// Package storage abstracts binary asset persistence for posters and actor
// pictures.  The catalog only ever sees opaque reference strings (URLs); the
// concrete store decides where bytes live.
package storage

import "context"

// Containers group stored assets by owning entity kind.
const (
	ContainerActors = "actors"
	ContainerMovies = "movies"
)

// FileStore is the collaborator contract for binary assets.
//
// Save writes a new file into a container and returns its reference.
// Delete removes a previously stored file by its reference; deleting an
// empty or unknown reference is a no-op.  Replacement is a caller concern:
// the superseded file must only be removed once the row referencing the
// fresh one has been committed.
type FileStore interface {
	Save(ctx context.Context, container, ext string, data []byte) (string, error)
	Delete(ctx context.Context, ref, container string) error
}
