// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// Implementations must enforce email uniqueness themselves: Create returns
// domainerrors.ErrEmailTaken when the email is already stored, regardless of any pre-check.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List returns every stored account.
	List(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account and assigns its ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. Deleting a missing account is not an error.
	Delete(ctx context.Context, account *entity.Account) error
}
