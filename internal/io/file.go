// Package ioutils provides file system utilities for discogs-labels.
//
// This package contains functions for:
//   - Atomic file writing
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation
// before any bytes are written.
package ioutils

import (
	"context"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path so that path either holds the
// complete data or is left untouched.
//
// The data is written to a temporary file in the destination directory
// which is then renamed over path. On any failure the temporary file is
// removed and no file appears at path.
//
// The final file has mode 0644.
//
// Example:
//
//	err := WriteFileAtomic(ctx, "/labels/collection.pdf", pdfData)
func WriteFileAtomic(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, "/labels/collection.html", []byte(html))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
