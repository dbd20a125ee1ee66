package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage stores blobs under a directory on the local disk.
type LocalStorage struct {
	root *os.Root
}

// NewLocalStorage creates basePath if needed and confines every access to it.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	root, err := os.OpenRoot(basePath)
	if err != nil {
		return nil, fmt.Errorf("open storage directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Close releases the storage root.
func (s *LocalStorage) Close() error {
	return s.root.Close()
}

// Save writes content to a temporary file and renames it over path, so a
// reader never sees a half-written blob.
func (s *LocalStorage) Save(ctx context.Context, path string, content io.Reader) error {
	name, err := clean(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := s.root.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp := name + ".tmp"
	f, err := s.root.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = s.root.Remove(tmp)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = s.root.Remove(tmp)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := s.root.Rename(tmp, name); err != nil {
		_ = s.root.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

func (s *LocalStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	name, err := clean(path)
	if err != nil {
		return nil, err
	}
	f, err := s.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(_ context.Context, path string) error {
	name, err := clean(path)
	if err != nil {
		return err
	}
	if err := s.root.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func clean(path string) (string, error) {
	name := filepath.Clean(filepath.FromSlash(path))
	if name == "." || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%q: %w", path, ErrInvalidPath)
	}
	return name, nil
}
