// Package storage keeps ticket and report attachments in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"licensing/config"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"
	"licensing/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket     *blob.Bucket
	publicBase string
}

// Params holds dependencies for the storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, attachments are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, params.Config.Storage.PublicBasePath), nil
}

// NewBlobStorage wraps an opened bucket. Returned paths are publicBase joined with the key.
func NewBlobStorage(bucket *blob.Bucket, publicBase string) service.FileStorage {
	return &blobStorage{bucket: bucket, publicBase: publicBase}
}

func (s *blobStorage) Save(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer %s", key)
	}

	return path.Join("/", s.publicBase, key), nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound.WithDetails(key)
		}

		return nil, errors.Wrapf(err, "open reader %s", key)
	}

	return &service.StoredObject{Body: r, ContentType: r.ContentType(), Size: r.Size()}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// cleanKey rejects keys that would escape the bucket prefix.
func cleanKey(key string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") {
		return "", domainerrors.ErrAttachmentRejected.WithDetails("invalid storage key")
	}

	return cleaned, nil
}
