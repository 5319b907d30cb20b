package usecase

import (
	"context"
	"io"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadAvatarInput is an uploaded picture as received from the client.
type UploadAvatarInput struct {
	ContentType string
	Content     io.Reader
}

// AvatarUsecase manages account avatars.
type AvatarUsecase interface {
	UploadAvatar(ctx context.Context, accountID uuid.UUID, input *UploadAvatarInput) (*entity.Account, error)
	DeleteAvatar(ctx context.Context, accountID uuid.UUID, filename string) (*entity.Account, error)
	OpenAvatar(ctx context.Context, filename string) (io.ReadCloser, string, error)
}
