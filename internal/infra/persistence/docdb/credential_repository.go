package docdb

import (
	"context"
	"time"

	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	"userapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/docstore"
)

// ErrCredentialExists is returned when an account already has a password record.
var ErrCredentialExists = errors.New("credential already exists")

// credentialRepository implements repository.CredentialRepository on a docstore collection.
type credentialRepository struct {
	coll    *docstore.Collection
	timeout time.Duration
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(colls *Collections) repository.CredentialRepository {
	return newCredentialRepository(colls.Credentials, colls.CallTimeout)
}

func newCredentialRepository(coll *docstore.Collection, timeout time.Duration) *credentialRepository {
	return &credentialRepository{coll: coll, timeout: timeout}
}

func (repo *credentialRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Credential, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	doc := &model.CredentialModel{AccountID: accountID.String()}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, storageFault(err, "failed to find credential")
	}

	return &entity.Credential{
		AccountID:    accountID,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	credential.CreatedAt = time.Now().UTC()

	doc := &model.CredentialModel{
		AccountID:    credential.AccountID.String(),
		PasswordHash: credential.PasswordHash,
		CreatedAt:    credential.CreatedAt,
	}
	if err := repo.coll.Create(ctx, doc); err != nil {
		if isAlreadyExists(err) {
			return errors.WithStack(ErrCredentialExists)
		}

		return storageFault(err, "failed to create credential")
	}

	return nil
}

func (repo *credentialRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	if err := repo.coll.Delete(ctx, &model.CredentialModel{AccountID: accountID.String()}); err != nil && !isNotFound(err) {
		return storageFault(err, "failed to delete credential")
	}

	return nil
}
