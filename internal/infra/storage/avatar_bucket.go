// Package storage keeps avatar images in a gocloud blob bucket. The bucket URL selects the
// backend: file:// for a local directory, mem:// for tests, s3:// in production.
package storage

import (
	"context"
	"io"
	"log/slog"

	"userapi/config"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// avatarBucket implements service.AvatarStorage.
type avatarBucket struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.AvatarStorage, error) {
	url := params.Config.Avatar.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %s", url)
	}

	params.Logger.Info("Avatar bucket opened", slog.String("url", url))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing avatar bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewAvatarStorage(bucket, params.Logger), nil
}

// NewAvatarStorage wraps an already opened bucket.
func NewAvatarStorage(bucket *blob.Bucket, logger *slog.Logger) service.AvatarStorage {
	return &avatarBucket{bucket: bucket, logger: logger}
}

func (s *avatarBucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write avatar %s", key)
	}

	return nil
}

// Open returns a reader for the avatar and its content type. The caller closes the reader.
func (s *avatarBucket) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrAvatarNotFound.WrapMessage(key)
		}

		return nil, "", errors.Wrapf(err, "failed to open avatar %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes the avatar. A missing object is logged and otherwise ignored.
func (s *avatarBucket) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil {
		return nil
	}
	if gcerrors.Code(err) == gcerrors.NotFound {
		s.logger.WarnContext(ctx, "Avatar already gone", slog.String("key", key))

		return nil
	}

	return errors.Wrapf(err, "failed to delete avatar %s", key)
}
