package impl

import (
	"context"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	mockRepo "userapi/internal/mocks/repository"
	mockSvc "userapi/internal/mocks/service"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	accountRepo    *mockRepo.MockAccountRepository
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	avatars        *mockSvc.MockAvatarStorage
	publisher      *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		accountRepo:    mockRepo.NewMockAccountRepository(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		avatars:        mockSvc.NewMockAvatarStorage(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		AccountRepo:    fx.accountRepo,
		CredentialRepo: fx.credentialRepo,
		Hasher:         fx.hasher,
		Avatars:        fx.avatars,
		Publisher:      fx.publisher,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    "a@x.com",
		Name:     "Ann",
		LastName: "Lee",
		Password: "secret1",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.credentialRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.AccountID == accountID && c.PasswordHash == "hashed"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventAccountRegistered && e.AccountID == accountID.String()
		})).
		Return(nil)

	account, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "Ann", account.Name)
	assert.Equal(t, entity.DefaultAvatar, account.Avatar)
}

func TestAccountService_Register_EmailTakenOnPreCheck(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	account, err := fx.service.Register(ctx, input)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_EmailTakenByConcurrentWrite(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_PreCheckStorageFault(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find account by email")

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrEmailTaken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAccountService_Register_CredentialFailureRemovesAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.credentialRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Credential")).
		Return(errors.New("write failed"))
	fx.accountRepo.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool { return a.ID == accountID })).
		Return(nil)

	account, err := fx.service.Register(ctx, input)

	assert.Nil(t, account)
	assert.ErrorContains(t, err, "failed to create credential")
}

func TestAccountService_Register_CompensationFailureStillReturnsOriginalError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.credentialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Credential")).Return(errors.New("write failed"))
	fx.accountRepo.EXPECT().Delete(mock.Anything, mock.AnythingOfType("*entity.Account")).Return(errors.New("delete failed"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorContains(t, err, "write failed")
}

func TestAccountService_Register_HashFailureWritesNothing(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("password too long"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.credentialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.credentialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Credential")).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	account, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetAccount(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accounts := []*entity.Account{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.accountRepo.EXPECT().List(ctx).Return(accounts, nil)

	got, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{ID: id, Email: "a@x.com", Name: "Old"}

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Name == "New" && a.LastName == "Name"
		})).
		Return(nil)

	account, err := fx.service.UpdateProfile(ctx, id, &usecase.UpdateProfileInput{Name: "New", LastName: "Name"})

	require.NoError(t, err)
	assert.Equal(t, "New", account.Name)
	assert.Equal(t, "a@x.com", account.Email)
}

func TestAccountService_DeleteAccount_RemovesEverything(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{ID: id, Email: "a@x.com", Avatar: "pic.jpg"}

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.accountRepo.EXPECT().Delete(ctx, existing).Return(nil)
	fx.credentialRepo.EXPECT().DeleteByAccount(ctx, id).Return(nil)
	fx.avatars.EXPECT().Delete(ctx, "pic.jpg").Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventAccountDeleted
		})).
		Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, id))
}

func TestAccountService_DeleteAccount_DefaultAvatarIsKept(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{ID: id, Email: "a@x.com", Avatar: entity.DefaultAvatar}

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.accountRepo.EXPECT().Delete(ctx, existing).Return(nil)
	fx.credentialRepo.EXPECT().DeleteByAccount(ctx, id).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, id))
	fx.avatars.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
