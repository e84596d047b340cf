// Package fileaccess reads and writes server configuration files.
//
// A Store wraps an afero filesystem. In production it is the OS filesystem,
// optionally rooted at a server directory; tests use an in-memory filesystem.
package fileaccess

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Common errors for file access.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("path is a directory, not a file")
)

const (
	defaultFileMode os.FileMode = 0644
	defaultDirMode  os.FileMode = 0755
)

// Store reads and writes text files on an afero filesystem.
type Store struct {
	fs afero.Fs
}

// New returns a Store over fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS returns a Store over the OS filesystem. When root is not empty every
// path is resolved below root and cannot escape it.
func NewOS(root string) *Store {
	var fsys afero.Fs = afero.NewOsFs()
	if root != "" {
		fsys = afero.NewBasePathFs(fsys, root)
	}
	return New(fsys)
}

// NewMemory returns a Store over an empty in-memory filesystem.
func NewMemory() *Store {
	return New(afero.NewMemMapFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadText returns the content of the file at path.
func (s *Store) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteText replaces the file at path with content using an atomic rename.
// Parent directories are created and the mode of an existing file is kept.
func (s *Store) WriteText(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := defaultFileMode
	info, err := s.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	case err == nil:
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write to a uniquely named temporary file first
	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, []byte(content), mode); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		// Clean up temp file on failure
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Exists reports whether a regular file exists at path.
func (s *Store) Exists(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && !info.IsDir()
}
