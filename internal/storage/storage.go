// Package storage keeps uploaded blobs such as card images.
package storage

import (
	"context" // Request scoped cancellation
	"errors"  // Sentinel errors
	"path"    // Slash path cleaning
	"strings" // Trimming and suffix checks
)

var (
	// ErrNotFound is returned when no blob exists at a path
	ErrNotFound = errors.New("blob not found")
	// ErrInvalidPath is returned for empty paths or paths escaping the root
	ErrInvalidPath = errors.New("invalid blob path")
)

// Blob is stored content with its media type
type Blob struct {
	Data        []byte // Raw content
	ContentType string // Media type served back to readers
}

// Store puts, reads and removes blobs by slash separated path
type Store interface {
	Put(ctx context.Context, key string, blob Blob) error
	Get(ctx context.Context, key string) (*Blob, error)
	Delete(ctx context.Context, key string) error
}

// CleanPath normalises key to a relative slash path, rejecting traversal
func CleanPath(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean("/" + key) // Rooted so leading ../ collapses
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", ErrInvalidPath
	}
	if strings.HasSuffix(cleaned, contentTypeSuffix) {
		return "", ErrInvalidPath // Reserved for LocalStore metadata
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
