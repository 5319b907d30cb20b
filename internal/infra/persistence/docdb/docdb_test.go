package docdb

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
)

const testTimeout = time.Second

func openCollection(t *testing.T, keyField string) *docstore.Collection {
	t.Helper()

	coll, err := memdocstore.OpenCollection(keyField, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = coll.Close() })

	return coll
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	account := &entity.Account{Email: "a@x.com", Name: "Ann", LastName: "Lee"}
	require.NoError(t, repo.Create(ctx, account))

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, entity.DefaultAvatar, account.Avatar)
	assert.False(t, account.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
	assert.Equal(t, "Lee", byEmail.LastName)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestAccountRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	_, err := repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	require.NoError(t, repo.Create(ctx, &entity.Account{Email: "a@x.com"}))

	_, err := repo.FindByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateEmailRejectedByStore(t *testing.T) {
	ctx := context.Background()
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	require.NoError(t, repo.Create(ctx, &entity.Account{Email: "a@x.com"}))

	err := repo.Create(ctx, &entity.Account{Email: "a@x.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_UpdateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	first := &entity.Account{Email: "a@x.com"}
	second := &entity.Account{Email: "b@x.com"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	first.Name = "Ann"
	first.Avatar = "abc.jpg"
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "abc.jpg", got.Avatar)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	require.NoError(t, repo.Delete(ctx, first))
	require.NoError(t, repo.Delete(ctx, first), "deleting twice is tolerated")

	_, err = repo.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_UpdateMissing(t *testing.T) {
	repo := newAccountRepository(openCollection(t, model.AccountKeyField), testTimeout)

	err := repo.Update(context.Background(), &entity.Account{ID: uuid.New(), Email: "ghost@x.com"})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := newCredentialRepository(openCollection(t, model.CredentialKeyField), testTimeout)
	accountID := uuid.New()

	_, err := repo.FindByAccount(ctx, accountID)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, repo.Create(ctx, &entity.Credential{AccountID: accountID, PasswordHash: "hash"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Credential{AccountID: accountID, PasswordHash: "other"}), ErrCredentialExists)

	cred, err := repo.FindByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "hash", cred.PasswordHash)
	assert.Equal(t, accountID, cred.AccountID)

	require.NoError(t, repo.DeleteByAccount(ctx, accountID))
	require.NoError(t, repo.DeleteByAccount(ctx, accountID))

	_, err = repo.FindByAccount(ctx, accountID)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepository(openCollection(t, model.SessionKeyField), testTimeout)
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err := repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	session := &entity.Session{ID: "s1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.Put(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.AccountID)
	assert.Equal(t, entity.SessionAnonymous, got.State(now))

	accountID := uuid.New()
	session.AccountID = accountID
	require.NoError(t, repo.Put(ctx, session))

	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, accountID, got.AccountID)
	assert.Equal(t, entity.SessionAuthenticated, got.State(now))

	require.NoError(t, repo.Delete(ctx, "s1"))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteByAccount(t *testing.T) {
	ctx := context.Background()
	repo := newSessionRepository(openCollection(t, model.SessionKeyField), testTimeout)
	now := time.Now().UTC().Truncate(time.Millisecond)

	owner := uuid.New()
	other := uuid.New()
	for id, accountID := range map[string]uuid.UUID{"s1": owner, "s2": owner, "s3": other, "s4": uuid.Nil} {
		require.NoError(t, repo.Put(ctx, &entity.Session{ID: id, AccountID: accountID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}))
	}

	count, err := repo.DeleteByAccount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, id := range []string{"s1", "s2"} {
		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	}
	for _, id := range []string{"s3", "s4"} {
		_, err := repo.Get(ctx, id)
		assert.NoError(t, err)
	}

	count, err = repo.DeleteByAccount(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.DeleteByAccount(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Zero(t, count, "anonymous sessions are never swept")
}

func TestSessionTTLIndex(t *testing.T) {
	index := sessionTTLIndex()

	assert.Equal(t, bson.D{{Key: "expiresAt", Value: 1}}, index.Keys)
	require.NotNil(t, index.Options)
	require.NotNil(t, index.Options.ExpireAfterSeconds)
	assert.Equal(t, int32(0), *index.Options.ExpireAfterSeconds, "documents expire at their own expiresAt")
	require.NotNil(t, index.Options.Name)
	assert.Equal(t, sessionTTLIndexName, *index.Options.Name)
}

func TestEnsureSessionTTL_NonMongoCollection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := ensureSessionTTL(context.Background(), openCollection(t, model.SessionKeyField), logger)

	assert.NoError(t, err)
}
