package repository

import (
	"context"
	"errors"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when an account has no password record.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists password hashes keyed by account ID.
type CredentialRepository interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Credential, error)
	Create(ctx context.Context, credential *entity.Credential) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}
