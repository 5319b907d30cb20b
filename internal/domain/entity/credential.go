package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the password record of exactly one Account.
// Only the salted hash is ever stored.
type Credential struct {
	AccountID    uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}
