// Package storage stores product images in a blob bucket addressed by a
// gocloud.dev URL, so development can use a local directory and production
// a GCS bucket with no code change.
package storage

import (
	"context"
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// driver for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// driver for production
	"gocloud.dev/gcerrors"
)

type bucketStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the image bucket, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Returns nil when storage is not
// configured; the product service treats a nil storage as "images disabled".
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		params.Logger.Info("Image storage not configured, image endpoints disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return &bucketStorage{bucket: bucket}, nil
}

// Upload writes the image under key, replacing any previous content.
func (s *bucketStorage) Upload(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return errors.Wrapf(err, "write %s", key)
	}

	return errors.Wrapf(w.Close(), "close writer for %s", key)
}

// Download streams the image stored under key together with its content type.
func (s *bucketStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, "", service.ErrImageNotFound
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "open reader for %s", key)
	}

	return r, r.ContentType(), nil
}

// Delete removes the image stored under key; absent keys are ignored.
func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "delete %s", key)
}
