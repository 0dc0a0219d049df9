// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the S3 implementation works with any S3-compatible provider (AWS S3, MinIO, LocalStack).
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Download when no object exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// Storage is the interface for uploading and retrieving objects.
type Storage interface {
	// Upload streams data to the store under the given key and returns the
	// public URL of the stored object. An existing object at key is overwritten.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// Download returns the full content of the object at key.
	// Wraps ErrObjectNotFound when the key does not exist.
	Download(ctx context.Context, key string) ([]byte, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// URLFor constructs the browser-accessible URL for a given key. No I/O.
	URLFor(key string) string
}
