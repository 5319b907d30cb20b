package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarExtension   = ".jpg"
	avatarContentType = "image/jpeg"
)

// avatarService implements usecase.AvatarUsecase.
type avatarService struct {
	accountRepo repository.AccountRepository
	storage     service.AvatarStorage
	resizer     service.ImageResizer
	size        int
	logger      *slog.Logger
}

// AvatarServiceParams holds dependencies for the AvatarService, injected by Fx.
type AvatarServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Storage     service.AvatarStorage
	Resizer     service.ImageResizer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAvatarService is the constructor for avatarService.
func NewAvatarService(params AvatarServiceParams) usecase.AvatarUsecase {
	return &avatarService{
		accountRepo: params.AccountRepo,
		storage:     params.Storage,
		resizer:     params.Resizer,
		size:        params.Config.Avatar.Size,
		logger:      params.Logger,
	}
}

func (srv *avatarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadAvatar stores a resized copy of the picture and points the account at it.
// The previous custom avatar is removed afterwards.
func (srv *avatarService) UploadAvatar(ctx context.Context, accountID uuid.UUID, input *usecase.UploadAvatarInput) (*entity.Account, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, errors.Wrap(domainerrors.ErrImageOnly, input.ContentType)
	}

	account, err := srv.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	data, err := srv.resizer.Resize(input.Content, srv.size)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageTooLarge) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrImageOnly, err.Error())
	}

	key := uuid.NewString() + avatarExtension
	if err := srv.storage.Put(ctx, key, data, avatarContentType); err != nil {
		return nil, errors.Wrap(err, "failed to store avatar")
	}

	previous := account.Avatar
	account.Avatar = key

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.removeObject(ctx, key)

		return nil, errors.Wrap(err, "failed to update account avatar")
	}

	if previous != "" && previous != entity.DefaultAvatar {
		srv.removeObject(ctx, previous)
	}

	srv.log(ctx).Info("Avatar updated", slog.String("account_id", accountID.String()), slog.String("avatar", key))

	return account, nil
}

// DeleteAvatar removes the caller's own avatar and resets it to the default.
func (srv *avatarService) DeleteAvatar(ctx context.Context, accountID uuid.UUID, filename string) (*entity.Account, error) {
	account, err := srv.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.HasCustomAvatar() || account.Avatar != filename {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "avatar does not belong to the caller")
	}

	if err := srv.storage.Delete(ctx, filename); err != nil {
		return nil, errors.Wrap(err, "failed to delete avatar")
	}

	account.Avatar = entity.DefaultAvatar
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to reset account avatar")
	}

	return account, nil
}

// OpenAvatar streams a stored avatar. Only bare file names are accepted.
func (srv *avatarService) OpenAvatar(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if filename == "" || path.Base(filename) != filename || strings.Contains(filename, "..") {
		return nil, "", errors.Wrap(domainerrors.ErrAvatarNotFound, filename)
	}

	reader, contentType, err := srv.storage.Open(ctx, filename)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = avatarContentType
	}

	return reader, contentType, nil
}

func (srv *avatarService) findAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, accountID.String())
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *avatarService) removeObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete avatar object", slog.String("avatar", key), slog.Any("error", err))
	}
}
