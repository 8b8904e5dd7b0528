// Package files proxies stored blobs through the API so pictures remain
// reachable even when the bucket itself is not exposed publicly.
package files

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/uxstudio/contacts/internal/storage"
)

// Handler streams objects from the store.
type Handler struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewHandler creates a new files Handler.
func NewHandler(store storage.Storage, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// GetFile godoc
//
//	@Summary		Fetch a stored file
//	@Description	Streams an object from the bucket by key, e.g. /files/contacts/{uuid}.png.
//	@Tags			files
//	@Produce		octet-stream
//	@Param			key	path		string	true	"Object key"
//	@Success		200	{file}		binary
//	@Failure		404	{object}	response.Envelope
//	@Router			/files/{key} [get]
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimLeft(chi.URLParam(r, "*"), "/")
	if key == "" {
		http.NotFound(w, r)
		return
	}

	rc, err := h.store.Download(r.Context(), key)
	if err != nil {
		h.logger.Debug("file retrieval failed", zap.String("key", key), zap.Error(err))
		http.NotFound(w, r)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentTypeFor(key))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", path.Base(key)))
	_, _ = io.Copy(w, rc)
}

// contentTypeFor infers the MIME type from the key's file extension.
func contentTypeFor(key string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(key), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
