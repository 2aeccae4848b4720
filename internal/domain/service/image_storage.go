package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// ErrImageNotFound is returned when no image exists under the given key.
var ErrImageNotFound = errors.New("image not found")

// ImageStorage stores product images in a blob bucket.
type ImageStorage interface {
	// Upload writes the image under key, replacing any previous content.
	Upload(ctx context.Context, key string, contentType string, r io.Reader) error

	// Download streams the image stored under key.
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the image stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
