// Package storage keeps dish images on local disk or in S3.
package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"restaurant-web/config"
)

// ErrNotImage rejects uploads that are not a supported image type.
var ErrNotImage = errors.New("uploaded file is not an image")

// ImageStore persists an image and returns the reference stored on the dish.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// New builds the store selected by IMAGE_STORE.
func New(ctx context.Context, cfg *config.Config) (ImageStore, error) {
	if cfg.ImageStore == "s3" {
		return NewS3Store(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicURL)
	}
	return NewLocalStore(cfg.UploadDir, "/uploads"), nil
}

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// imageExt validates the upload and picks the file extension to store it under.
func imageExt(filename, contentType string) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "" && !strings.HasPrefix(mediaType, "image/") {
		return "", ErrNotImage
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" && mediaType != "" {
		if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	if ext == ".jpe" {
		ext = ".jpg"
	}
	if !allowedExt[ext] {
		return "", ErrNotImage
	}
	return ext, nil
}
