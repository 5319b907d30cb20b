package impl

import (
	"context"
	"log/slog"

	deliverycontext "userapi/internal/delivery/context"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authenticator implements usecase.Authenticator against the account and credential stores.
type authenticator struct {
	accountRepo    repository.AccountRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// AuthenticatorParams holds dependencies for the Authenticator, injected by Fx.
type AuthenticatorParams struct {
	fx.In

	AccountRepo    repository.AccountRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewAuthenticator is the constructor for authenticator.
func NewAuthenticator(params AuthenticatorParams) usecase.Authenticator {
	return &authenticator{
		accountRepo:    params.AccountRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

func (a *authenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Authenticate looks the account up by exact email and checks the password against its credential.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return uuid.Nil, errors.WithStack(domainerrors.ErrUnknownEmail)
		}

		return uuid.Nil, errors.Wrap(err, "failed to find account")
	}

	credential, err := a.credentialRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			// Left behind by an interrupted registration; nobody can log in to it.
			a.log(ctx).Warn("Account has no credential", slog.String("account_id", account.ID.String()))

			return uuid.Nil, errors.WithStack(domainerrors.ErrUnknownEmail)
		}

		return uuid.Nil, errors.Wrap(err, "failed to find credential")
	}

	if !a.hasher.Check(password, credential.PasswordHash) {
		return uuid.Nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	return account.ID, nil
}
