package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage defines the interface for résumé file storage operations.
type Storage interface {
	// Save stores a file under the given name.
	Save(name string, file io.Reader) error

	// Open returns a reader for the stored file.
	Open(name string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(name string) error

	// Exists reports whether the file is present in storage.
	Exists(name string) bool
}

// LocalStorage stores files on the local filesystem under a root directory.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) path(name string) string {
	// Uploaded filenames are server-generated, but strip any path components
	// so a stored name can never escape the root.
	return filepath.Join(s.root, filepath.Base(name))
}

func (s *LocalStorage) Save(name string, file io.Reader) error {
	dest, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = dest.Close() }()

	_, err = io.Copy(dest, file)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

func (s *LocalStorage) Delete(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
