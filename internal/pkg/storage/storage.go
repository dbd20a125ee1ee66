// Package storage keeps uploaded binaries (the club logo) outside the
// database, which only records their paths.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("stored object not found")
	ErrInvalidPath = errors.New("storage path escapes the storage root")
)

// Storage saves and serves blobs by relative path.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	// Get returns ErrNotFound when nothing is stored at path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete is a no-op for missing paths.
	Delete(ctx context.Context, path string) error
}
