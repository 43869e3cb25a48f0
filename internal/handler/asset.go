package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// errAssetStore marks a file-store failure so callers can answer "could not
// store" instead of mapping it through the database error taxonomy.
var errAssetStore = errors.New("asset store failed")

// storeThenWrite saves an uploaded asset, runs the row write with the fresh
// reference, and reconciles storage with the outcome: a failed write removes
// the fresh file so it cannot leak, a successful one removes the superseded
// oldRef (empty on create).  Both removals are best-effort; the superseded
// file is only touched after the row referencing the fresh one is committed,
// so a failed write never leaves the row pointing at a deleted file.
func (h *CatalogHandler) storeThenWrite(ctx context.Context, container, ext string, data []byte, oldRef string, write func(ref string) error) error {
	ref, err := h.Files.Save(ctx, container, ext, data)
	if err != nil {
		h.Log.Error("asset save failed", zap.String("container", container), zap.Error(err))
		return errAssetStore
	}
	if err := write(ref); err != nil {
		if delErr := h.Files.Delete(ctx, ref, container); delErr != nil {
			h.Log.Warn("orphan asset cleanup failed", zap.String("ref", ref), zap.Error(delErr))
		}
		return err
	}
	if oldRef != "" {
		if delErr := h.Files.Delete(ctx, oldRef, container); delErr != nil {
			h.Log.Warn("superseded asset delete failed", zap.String("ref", oldRef), zap.Error(delErr))
		}
	}
	return nil
}
