// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Name     string
	LastName string
	Password string
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name     string
	LastName string
}

// AccountUsecase defines the account operations the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
