package service

import (
	"context"
	"io"
)

// AvatarStorage keeps avatar images addressed by key.
type AvatarStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

// ImageResizer turns an uploaded picture into a stored avatar.
type ImageResizer interface {
	// Resize decodes src and returns a JPEG that fits within size x size, keeping the aspect ratio.
	Resize(src io.Reader, size int) ([]byte, error)
}
