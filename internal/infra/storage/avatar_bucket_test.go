package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "userapi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *avatarBucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewAvatarStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil))).(*avatarBucket)
}

func TestAvatarBucket_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Put(ctx, "a.jpg", []byte("jpeg-bytes"), "image/jpeg"))

	reader, contentType, err := store.Open(ctx, "a.jpg")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, store.Delete(ctx, "a.jpg"))

	_, _, err = store.Open(ctx, "a.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrAvatarNotFound)
}

func TestAvatarBucket_DeleteMissingIsNotAnError(t *testing.T) {
	store := newTestStorage(t)

	assert.NoError(t, store.Delete(context.Background(), "missing.jpg"))
}
