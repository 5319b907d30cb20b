package docdb

import (
	"context"
	"io"
	"time"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/docstore"
)

// accountRepository implements the repository.AccountRepository interface on a docstore collection.
type accountRepository struct {
	coll    *docstore.Collection
	timeout time.Duration
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(colls *Collections) repository.AccountRepository {
	return newAccountRepository(colls.Accounts, colls.CallTimeout)
}

func newAccountRepository(coll *docstore.Collection, timeout time.Duration) *accountRepository {
	return &accountRepository{coll: coll, timeout: timeout}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	iter := repo.coll.Query().Where("id", "=", id.String()).Limit(1).Get(ctx)
	defer iter.Stop()

	var doc model.AccountModel
	if err := iter.Next(ctx, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, storageFault(err, "failed to find account by id")
	}

	return toAccountDomain(&doc), nil
}

// FindByEmail retrieves a single account by its email, which is the document key.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	doc := &model.AccountModel{Email: email}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, storageFault(err, "failed to find account by email")
	}

	return toAccountDomain(doc), nil
}

// List returns every account.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	iter := repo.coll.Query().Get(ctx)
	defer iter.Stop()

	accounts := make([]*entity.Account, 0)
	for {
		var doc model.AccountModel
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, storageFault(err, "failed to list accounts")
		}
		accounts = append(accounts, toAccountDomain(&doc))
	}

	return accounts, nil
}

// Create persists a new account. Because the collection is keyed by email, a concurrent
// registration that slipped past the pre-check still fails here.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	now := time.Now().UTC()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.Avatar == "" {
		account.Avatar = entity.DefaultAvatar
	}
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := repo.coll.Create(ctx, fromAccountDomain(account)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return storageFault(err, "failed to create account")
	}

	return nil
}

// Update replaces an existing account document.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	account.UpdatedAt = time.Now().UTC()

	if err := repo.coll.Replace(ctx, fromAccountDomain(account)); err != nil {
		if isNotFound(err) {
			return repository.ErrAccountNotFound
		}

		return storageFault(err, "failed to update account")
	}

	return nil
}

// Delete removes the account document.
func (repo *accountRepository) Delete(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	if err := repo.coll.Delete(ctx, &model.AccountModel{Email: account.Email}); err != nil && !isNotFound(err) {
		return storageFault(err, "failed to delete account")
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a stored document to a domain Account entity.
// A malformed stored ID maps to uuid.Nil rather than failing the read.
func toAccountDomain(doc *model.AccountModel) *entity.Account {
	if doc == nil {
		return nil
	}

	id, _ := uuid.Parse(doc.ID)

	return &entity.Account{
		ID:        id,
		Email:     doc.Email,
		Name:      doc.Name,
		LastName:  doc.LastName,
		Avatar:    doc.Avatar,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to its stored document.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	if account == nil {
		return nil
	}

	return &model.AccountModel{
		Email:     account.Email,
		ID:        account.ID.String(),
		Name:      account.Name,
		LastName:  account.LastName,
		Avatar:    account.Avatar,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
