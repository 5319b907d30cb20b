// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is the avatar reference every account starts with and returns to
// when its uploaded picture is removed.
const DefaultAvatar = "default.jpg"

// Account is a registered user's durable profile record.
type Account struct {
	ID        uuid.UUID // Stable identifier, never reused.
	Email     string    // Unique login identifier, compared case-sensitively as stored.
	Name      string    // Display name, at most 100 characters.
	LastName  string    // At most 100 characters.
	Avatar    string    // Storage key of the avatar image, DefaultAvatar when none was uploaded.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCustomAvatar reports whether the account points at an uploaded picture.
func (a *Account) HasCustomAvatar() bool {
	return a.Avatar != "" && a.Avatar != DefaultAvatar
}
