package service

import (
	"time"
)

// CookieSigner protects the session identifier carried in the session cookie.
type CookieSigner interface {
	// Sign returns a tamper-evident cookie value for the session ID.
	Sign(sessionID string, expiresAt time.Time) (string, error)

	// Verify returns the session ID carried by a cookie value produced by Sign.
	Verify(value string) (string, error)
}
