// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/lifecycle"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo    repository.AccountRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	avatars        service.AvatarStorage
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo    repository.AccountRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Avatars        service.AvatarStorage
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:    params.AccountRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		avatars:        params.Avatars,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, then creates the account and its credential. The two writes
// are not atomic: when the credential write fails the account is removed again on a
// best-effort basis.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	// Hash before any write so a rejected password leaves no account behind.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Email:    input.Email,
		Name:     input.Name,
		LastName: input.LastName,
		Avatar:   entity.DefaultAvatar,
	}

	// The store rejects a duplicate email even if another request won the race since the check above.
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	credential := &entity.Credential{AccountID: account.ID, PasswordHash: hash}
	if err := srv.credentialRepo.Create(ctx, credential); err != nil {
		srv.log(ctx).Error("Account created without credential",
			slog.String("account_id", account.ID.String()),
			slog.String("email", account.Email),
			slog.Any("error", err),
		)
		srv.compensateAccount(ctx, account)

		return nil, errors.Wrap(err, "failed to create credential")
	}

	srv.publish(ctx, service.EventAccountRegistered, account)
	srv.log(ctx).Debug("Registration completed", slog.String("account_id", account.ID.String()))

	return account, nil
}

// compensateAccount removes an account whose credential could not be stored. The request
// context may already be done, so the delete runs on a detached context with its own deadline.
func (srv *accountService) compensateAccount(ctx context.Context, account *entity.Account) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.accountRepo.Delete(cleanupCtx, account); err != nil {
		srv.log(ctx).Error("Failed to remove orphan account, manual reconciliation required",
			slog.String("account_id", account.ID.String()),
			slog.String("email", account.Email),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Warn("Orphan account removed", slog.String("account_id", account.ID.String()))
}

// GetAccount returns a single account.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListAccounts returns every account.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// UpdateProfile replaces the caller's name and last name.
func (srv *accountService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating profile", slog.String("account_id", id.String()))

	account, err := srv.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.LastName = input.LastName

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	return account, nil
}

// DeleteAccount removes the account, its credential and its custom avatar.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.String("account_id", id.String()))

	account, err := srv.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.accountRepo.Delete(ctx, account); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	if err := srv.credentialRepo.DeleteByAccount(ctx, account.ID); err != nil {
		srv.log(ctx).Error("Failed to delete credential of removed account",
			slog.String("account_id", account.ID.String()),
			slog.Any("error", err),
		)
	}

	if account.HasCustomAvatar() {
		if err := srv.avatars.Delete(ctx, account.Avatar); err != nil {
			srv.log(ctx).Warn("Failed to delete avatar of removed account",
				slog.String("account_id", account.ID.String()),
				slog.String("avatar", account.Avatar),
				slog.Any("error", err),
			)
		}
	}

	srv.publish(ctx, service.EventAccountDeleted, account)

	return nil
}

// publish emits an account event. Delivery failures are logged and never fail the request.
func (srv *accountService) publish(ctx context.Context, eventType string, account *entity.Account) {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  account.ID.String(),
		Email:      account.Email,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.String("account_id", event.AccountID),
			slog.Any("error", err),
		)
	}
}
