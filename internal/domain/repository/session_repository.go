package repository

import (
	"context"
	"errors"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session is stored under an ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the durable backing of the session manager.
// Records carry their own ExpiresAt, which the store may use to expire them server-side.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*entity.Session, error)
	Put(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id string) error
	// DeleteByAccount removes every session bound to the account and reports how many.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int, error)
}
