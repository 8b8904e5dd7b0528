// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, RustFS, AWS S3).
package storage

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors classifying storage failures. Implementations wrap the
// underlying transport error so callers can still inspect it with errors.As.
var (
	// ErrUnavailable means the backing bucket could not be reached or
	// prepared. Startup treats it as fatal.
	ErrUnavailable = errors.New("object storage unavailable")
	// ErrObjectNotFound means the requested key does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrWrite classifies a failed upload.
	ErrWrite = errors.New("storage write failed")
	// ErrRead classifies a failed download other than a missing key.
	ErrRead = errors.New("storage read failed")
	// ErrDelete classifies a failed delete.
	ErrDelete = errors.New("storage delete failed")
)

// Storage is the interface for uploading, retrieving and deleting objects.
type Storage interface {
	// Upload streams data to the store under the given key, overwriting any
	// existing object. No partial write becomes visible on error.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Download returns the object content. The caller must close the
	// returned stream on every exit path. A missing key yields
	// ErrObjectNotFound.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes an object identified by key. Deleting a key that does
	// not exist is not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
	// KeyFromURL recovers the storage key from a public URL produced by
	// PublicURL. It returns "" when no key can be extracted.
	KeyFromURL(url string) string
}
