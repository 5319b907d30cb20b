package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle position of a server-side session.
type SessionState int

const (
	// SessionAnonymous has no principal bound.
	SessionAnonymous SessionState = iota
	// SessionAuthenticated has a principal bound and has not expired.
	SessionAuthenticated
	// SessionDestroyed was logged out or has expired; its id must never be reused.
	SessionDestroyed
)

func (s SessionState) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	case SessionDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Session binds an opaque identifier to at most one authenticated account.
type Session struct {
	ID        string
	AccountID uuid.UUID // uuid.Nil while anonymous.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// State evaluates the session at the given instant. A nil session (deleted from the
// store) and an expired one both read as destroyed.
func (s *Session) State(now time.Time) SessionState {
	if s == nil || !now.Before(s.ExpiresAt) {
		return SessionDestroyed
	}
	if s.AccountID == uuid.Nil {
		return SessionAnonymous
	}

	return SessionAuthenticated
}

// Principal returns the bound account id, if any.
func (s *Session) Principal(now time.Time) (uuid.UUID, bool) {
	if s.State(now) != SessionAuthenticated {
		return uuid.Nil, false
	}

	return s.AccountID, true
}
