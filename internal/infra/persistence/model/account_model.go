package model

import (
	"time"
)

// Document key fields. Collection URLs and the in-memory collections used in tests
// must name these as their key.
const (
	AccountKeyField    = "email"
	CredentialKeyField = "accountId"
	SessionKeyField    = "id"
)

// SessionExpiresAtField is the sessions field the MongoDB TTL index is built on.
const SessionExpiresAtField = "expiresAt"

// AccountModel mirrors a document in the accounts collection. The collection is keyed
// by email, which makes the store itself reject a second account with the same address.
type AccountModel struct {
	Email     string    `docstore:"email"`
	ID        string    `docstore:"id"`
	Name      string    `docstore:"name"`
	LastName  string    `docstore:"lastname"`
	Avatar    string    `docstore:"avatar"`
	CreatedAt time.Time `docstore:"createdAt"`
	UpdatedAt time.Time `docstore:"updatedAt"`
}

// CredentialModel mirrors a document in the credentials collection, keyed by account ID.
type CredentialModel struct {
	AccountID    string    `docstore:"accountId"`
	PasswordHash string    `docstore:"password"`
	CreatedAt    time.Time `docstore:"createdAt"`
}

// SessionModel mirrors a document in the sessions collection. On MongoDB the TTL index
// created by docdb.New deletes it once expiresAt passes; reads check expiry regardless.
type SessionModel struct {
	ID        string    `docstore:"id"`
	AccountID string    `docstore:"accountId"`
	ExpiresAt time.Time `docstore:"expiresAt"`
	CreatedAt time.Time `docstore:"createdAt"`
}
