// Package storage implements media asset storage on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazette-press/gazette/internal/shared/logger"
)

// LocalDiskStore keeps media assets under a base directory and serves them
// from a base URL. Keys are slash-separated relative paths.
type LocalDiskStore struct {
	basePath string
	baseURL  string
	logger   logger.Interface
}

func NewLocalDiskStore(basePath, baseURL string, logger logger.Interface) *LocalDiskStore {
	return &LocalDiskStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Save writes the asset to disk, creating parent directories as needed.
func (s *LocalDiskStore) Save(key string, r io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create asset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create asset file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write asset: %w", err)
	}

	s.logger.Debugw("asset stored", "key", key)
	return nil
}

// Open returns a reader for the stored asset.
func (s *LocalDiskStore) Open(key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", key, err)
	}
	return f, nil
}

// Delete removes the stored asset. A missing file is not an error.
func (s *LocalDiskStore) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL of an asset key.
func (s *LocalDiskStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// BasePath returns the directory assets are stored under, for static serving.
func (s *LocalDiskStore) BasePath() string {
	return s.basePath
}

func (s *LocalDiskStore) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid asset key: %q", key)
	}
	return filepath.Join(s.basePath, clean), nil
}
