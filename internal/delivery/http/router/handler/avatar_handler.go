package handler

import (
	"log/slog"
	"net/http"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/delivery/http/middleware"
	"userapi/internal/delivery/http/response"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/usecase"
	"userapi/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const avatarFormField = "avatar"

// AvatarHandler serves avatar upload, removal and download.
type AvatarHandler struct {
	avatars  usecase.AvatarUsecase
	maxBytes int64
	logger   *slog.Logger
}

// NewAvatarHandler is the constructor for AvatarHandler, injected by Fx.
func NewAvatarHandler(avatars usecase.AvatarUsecase, cfg *config.Config, logger *slog.Logger) *AvatarHandler {
	return &AvatarHandler{
		avatars:  avatars,
		maxBytes: cfg.Avatar.MaxBytes,
		logger:   logger,
	}
}

// Upload accepts a multipart image in the "avatar" field.
func (h *AvatarHandler) Upload(c echo.Context) error {
	file, err := c.FormFile(avatarFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("avatar file is required"))
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Avatar must not exceed "+util.FormatBytes(h.maxBytes))
	}

	src, err := file.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	account, err := h.avatars.UploadAvatar(c.Request().Context(), middleware.AccountID(c), &usecase.UploadAvatarInput{
		ContentType: file.Header.Get(echo.HeaderContentType),
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Avatar Updated")
}

// Delete removes the caller's avatar named in the path.
func (h *AvatarHandler) Delete(c echo.Context) error {
	account, err := h.avatars.DeleteAvatar(c.Request().Context(), middleware.AccountID(c), c.Param("filename"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Avatar Deleted")
}

// Serve streams a stored avatar.
func (h *AvatarHandler) Serve(c echo.Context) error {
	reader, contentType, err := h.avatars.OpenAvatar(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to close avatar", slog.Any("error", err))
		}
	}()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
