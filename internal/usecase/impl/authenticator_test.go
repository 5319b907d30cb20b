package impl

import (
	"context"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	mockRepo "userapi/internal/mocks/repository"
	mockSvc "userapi/internal/mocks/service"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authenticatorFixtures struct {
	auth           usecase.Authenticator
	accountRepo    *mockRepo.MockAccountRepository
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
}

func createTestAuthenticator(t *testing.T) authenticatorFixtures {
	fx := authenticatorFixtures{
		accountRepo:    mockRepo.NewMockAccountRepository(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
	}
	fx.auth = NewAuthenticator(AuthenticatorParams{
		AccountRepo:    fx.accountRepo,
		CredentialRepo: fx.credentialRepo,
		Hasher:         fx.hasher,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestAuthenticator_Success(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.Account{ID: id, Email: "a@x.com"}, nil)
	fx.credentialRepo.EXPECT().FindByAccount(ctx, id).Return(&entity.Credential{AccountID: id, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hash").Return(true)

	got, err := fx.auth.Authenticate(ctx, "a@x.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestAuthenticator_UnknownEmail(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.auth.Authenticate(ctx, "nobody@x.com", "secret1")

	assert.ErrorIs(t, err, domainerrors.ErrUnknownEmail)
	assert.NotErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAuthenticator_PasswordMismatch(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.Account{ID: id}, nil)
	fx.credentialRepo.EXPECT().FindByAccount(ctx, id).Return(&entity.Credential{AccountID: id, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := fx.auth.Authenticate(ctx, "a@x.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	assert.NotErrorIs(t, err, domainerrors.ErrUnknownEmail)
}

func TestAuthenticator_FailuresLookIdenticalExternally(t *testing.T) {
	var unknown, mismatch domainerrors.AppError
	require.ErrorAs(t, errors.WithStack(domainerrors.ErrUnknownEmail), &unknown)
	require.ErrorAs(t, errors.WithStack(domainerrors.ErrPasswordMismatch), &mismatch)

	assert.Equal(t, unknown.HTTPCode(), mismatch.HTTPCode())
	assert.Equal(t, unknown.ErrorCode(), mismatch.ErrorCode())
	assert.Equal(t, unknown.Message(), mismatch.Message())
}

func TestAuthenticator_MissingCredentialIsUnknownEmail(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.Account{ID: id}, nil)
	fx.credentialRepo.EXPECT().FindByAccount(ctx, id).Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.auth.Authenticate(ctx, "a@x.com", "secret1")

	assert.ErrorIs(t, err, domainerrors.ErrUnknownEmail)
}

func TestAuthenticator_StorageFaultIsInternal(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find account by email"))

	_, err := fx.auth.Authenticate(ctx, "a@x.com", "secret1")

	require.Error(t, err)
	assert.False(t, domainerrors.IsInvalidCredentials(err))
}
