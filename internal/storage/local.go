package storage

import (
	"context"       // Store interface
	"errors"        // Error matching
	"fmt"           // Error wrapping
	"io/fs"         // Missing file detection
	"os"            // File access
	"path/filepath" // OS specific paths
)

// contentTypeSuffix names the file next to each blob that holds its media type
const contentTypeSuffix = ".content-type"

// LocalStore keeps blobs as files under a root directory
type LocalStore struct {
	root string // Directory holding every blob
}

// NewLocalStore creates root if needed
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// file maps key to its path under the root
func (s *LocalStore) file(key string) (string, error) {
	clean, err := CleanPath(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Put writes the blob and its media type, replacing any previous content
func (s *LocalStore) Put(_ context.Context, key string, blob Blob) error {
	name, err := s.file(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(name, blob.Data, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return os.WriteFile(name+contentTypeSuffix, []byte(blob.ContentType), 0o644) // Media type sidecar
}

// Get reads the blob at key
func (s *LocalStore) Get(_ context.Context, key string) (*Blob, error) {
	name, err := s.file(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	contentType, err := os.ReadFile(name + contentTypeSuffix)
	if err != nil {
		contentType = []byte("application/octet-stream") // Sidecar lost, serve as binary
	}
	return &Blob{Data: data, ContentType: string(contentType)}, nil
}

// Delete removes the blob and its sidecar
func (s *LocalStore) Delete(_ context.Context, key string) error {
	name, err := s.file(key)
	if err != nil {
		return err
	}
	if err := os.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	_ = os.Remove(name + contentTypeSuffix) // Best effort, the blob is already gone
	return nil
}
