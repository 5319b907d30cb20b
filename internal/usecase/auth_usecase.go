package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Authenticator verifies an email and password pair.
type Authenticator interface {
	// Authenticate returns the account ID on success. Failures are domainerrors.ErrUnknownEmail,
	// domainerrors.ErrPasswordMismatch, or an internal error.
	Authenticate(ctx context.Context, email, password string) (uuid.UUID, error)
}
