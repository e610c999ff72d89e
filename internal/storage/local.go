package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps objects as files under a single directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the directory if needed and returns a store over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if errMkdir := os.MkdirAll(dir, 0755); errMkdir != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", errMkdir)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) string {
	// Keys come from ObjectKey and contain no separators; Base is a backstop.
	return filepath.Join(s.dir, filepath.Base(key))
}

// Put writes the object under key.
func (s *LocalStore) Put(_ context.Context, key, _ string, r io.Reader) error {
	f, errCreate := os.Create(s.path(key))
	if errCreate != nil {
		return fmt.Errorf("storage: create object: %w", errCreate)
	}
	if _, errCopy := io.Copy(f, r); errCopy != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("storage: write object: %w", errCopy)
	}
	if errClose := f.Close(); errClose != nil {
		return fmt.Errorf("storage: close object: %w", errClose)
	}
	return nil
}

// Open returns a reader for the object.
func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, errOpen := os.Open(s.path(key))
	if errOpen != nil {
		if os.IsNotExist(errOpen) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: open object: %w", errOpen)
	}
	return f, nil
}

// Delete removes the object.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if errRemove := os.Remove(s.path(key)); errRemove != nil && !os.IsNotExist(errRemove) {
		return fmt.Errorf("storage: delete object: %w", errRemove)
	}
	return nil
}
