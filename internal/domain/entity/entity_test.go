package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession_State(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	tests := []struct {
		name    string
		session *Session
		want    SessionState
	}{
		{name: "nil session", session: nil, want: SessionDestroyed},
		{name: "anonymous", session: &Session{ID: "s", ExpiresAt: now.Add(time.Minute)}, want: SessionAnonymous},
		{name: "authenticated", session: &Session{ID: "s", AccountID: accountID, ExpiresAt: now.Add(time.Minute)}, want: SessionAuthenticated},
		{name: "expires at the boundary", session: &Session{ID: "s", AccountID: accountID, ExpiresAt: now}, want: SessionDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.State(now))
		})
	}
}

func TestSession_Principal(t *testing.T) {
	now := time.Now()
	accountID := uuid.New()

	got, ok := (&Session{AccountID: accountID, ExpiresAt: now.Add(time.Hour)}).Principal(now)
	assert.True(t, ok)
	assert.Equal(t, accountID, got)

	got, ok = (&Session{ExpiresAt: now.Add(time.Hour)}).Principal(now)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)

	_, ok = (&Session{AccountID: accountID, ExpiresAt: now.Add(-time.Second)}).Principal(now)
	assert.False(t, ok, "an expired session has no principal")
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "anonymous", SessionAnonymous.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
	assert.Equal(t, "destroyed", SessionDestroyed.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}

func TestAccount_HasCustomAvatar(t *testing.T) {
	assert.False(t, (&Account{Avatar: DefaultAvatar}).HasCustomAvatar())
	assert.False(t, (&Account{}).HasCustomAvatar())
	assert.True(t, (&Account{Avatar: "3f1c.jpg"}).HasCustomAvatar())
}
