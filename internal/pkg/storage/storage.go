package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath  = errors.New("invalid file path")
	ErrFileNotFound = errors.New("file not found")
)

// FileStorage keeps files produced by downloads and exports.
type FileStorage interface {
	// Save writes r under name, replacing an existing file, and returns the bytes written
	Save(ctx context.Context, r io.Reader, name string) (int64, error)

	// Open retrieves a file
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	Delete(ctx context.Context, name string) error

	// URL is where the saved file is served from
	URL(name string) string
}
