package usecase

import (
	"context"
	"time"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionManager owns the lifecycle of server-side sessions.
type SessionManager interface {
	// Create mints and persists a new anonymous session.
	Create(ctx context.Context) (*entity.Session, error)

	// Load returns a live session. Unknown, destroyed and expired IDs yield domainerrors.ErrSessionNotFound.
	Load(ctx context.Context, id string) (*entity.Session, error)

	// Bind replaces the session with a new authenticated one for the account. The returned
	// session has a new ID; the old ID is deleted.
	Bind(ctx context.Context, id string, accountID uuid.UUID) (*entity.Session, error)

	// PrincipalOf reports the account bound to a live session.
	PrincipalOf(ctx context.Context, id string) (uuid.UUID, bool, error)

	// Destroy ends the session. Destroying an unknown ID is not an error.
	Destroy(ctx context.Context, id string) error

	// RevokeAccount destroys every session bound to the account, e.g. after it was deleted.
	RevokeAccount(ctx context.Context, accountID uuid.UUID) (int, error)

	// TTL is the lifetime given to sessions on creation and bind.
	TTL() time.Duration
}
