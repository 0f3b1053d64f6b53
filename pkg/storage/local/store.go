// Package local is a disk-backed blob store for uploaded document files.
// Object keys are generated server-side so client-supplied names never touch
// the filesystem layout.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// Store writes uploaded files under a single root directory and hands back
// the public URL they are served from.
type Store struct {
	root    string
	baseURL string
}

// NewStore ensures the upload root exists and returns a store bound to it.
func NewStore(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*Store, error) {
	if cfg.UploadDir == "" {
		return nil, errors.New("upload directory is required")
	}
	root, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("resolving upload directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	store := &Store{
		root:    root,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
	if logg != nil {
		logg.Info(ctx, "local file store initialized")
	}
	return store, nil
}

// Save streams the reader to disk under a fresh object key and returns the
// public URL. The original filename only contributes its extension.
func (s *Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if s == nil {
		return "", errors.New("file store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := uuid.NewString() + sanitizeExt(originalName)
	target := filepath.Join(s.root, key)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// Remove deletes the object behind a URL previously returned by Save.
// Unknown URLs are ignored.
func (s *Store) Remove(ctx context.Context, fileURL string) error {
	if s == nil {
		return errors.New("file store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	key := path.Base(fileURL)
	if key == "" || key == "." || key == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing upload file: %w", err)
	}
	return nil
}

// Root returns the absolute directory files are written under, for static
// file serving.
func (s *Store) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
