package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes images under Dir and serves them from URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

// NewLocalStore stores under dir and serves from urlPrefix.
func NewLocalStore(dir, urlPrefix string) *LocalStore {
	return &LocalStore{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Save writes the image under a random name and returns its URL path.
func (s *LocalStore) Save(_ context.Context, filename, contentType string, r io.Reader) (string, error) {
	ext, err := imageExt(filename, contentType)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path.Join(s.URLPrefix, name), nil
}

// Delete removes a file previously returned by Save. Foreign references are ignored.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	if !strings.HasPrefix(ref, s.URLPrefix+"/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, path.Base(ref)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
