// Package storage persists diary entry images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"diary/config"
	"diary/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // register gs:// buckets
	"gocloud.dev/gcerrors"
)

// blobImageStore implements service.ImageStore on top of a blob bucket. Keys
// are derived from the image bytes, so re-uploading the same image is a no-op
// that yields the same URL.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StoreParams holds dependencies for the image store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and registers its shutdown hook.
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing image store bucket")

			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put stores the image bytes under a content-derived key and returns the
// public URL.
func (s *blobImageStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image data is empty")
	}

	sum := sha256.Sum256(data)
	key := "images/" + hex.EncodeToString(sum[:]) + extensionFor(contentType)

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to check for existing image")
	}

	if !exists {
		opts := &blob.WriterOptions{ContentType: contentType}
		if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
			return "", errors.Wrap(err, "failed to write image")
		}
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously stored image by its key. Deleting a key that is
// already gone is not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
