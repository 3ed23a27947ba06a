// Package fsx abstracts file storage so handlers and workers don't care
// whether uploads live on local disk or in S3.
package fsx

import (
	"context"
	"io"
)

// FileReader is the read-only slice of FileSystem used by workers.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem stores and retrieves uploaded files.
type FileSystem interface {
	FileReader

	// WriteFileStream writes the contents of r to path.
	WriteFileStream(ctx context.Context, path string, r io.Reader) error

	// Delete removes the file at path.
	Delete(ctx context.Context, path string) error

	// Join builds a storage path from parts using the backend's separator.
	Join(parts ...string) string
}
