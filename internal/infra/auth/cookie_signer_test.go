package auth

import (
	"testing"
	"time"

	"userapi/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string) *jwtCookieSigner {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{Secret: secret}}
	signer, err := NewJWTCookieSigner(cfg)
	require.NoError(t, err)

	return signer.(*jwtCookieSigner)
}

func TestJWTCookieSigner_RoundTrip(t *testing.T) {
	signer := newTestSigner(t, "session-secret")

	value, err := signer.Sign("sid-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sid, err := signer.Verify(value)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestJWTCookieSigner_RejectsOtherSecret(t *testing.T) {
	value, err := newTestSigner(t, "secret-a").Sign("sid-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = newTestSigner(t, "secret-b").Verify(value)

	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestJWTCookieSigner_RejectsExpired(t *testing.T) {
	signer := newTestSigner(t, "session-secret")

	value, err := signer.Sign("sid-123", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify(value)

	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestJWTCookieSigner_RejectsGarbageAndNoneAlg(t *testing.T) {
	signer := newTestSigner(t, "session-secret")

	_, err := signer.Verify("not-a-token")
	assert.True(t, errors.Is(err, ErrInvalidCookie))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "sid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	value, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = signer.Verify(value)
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestNewJWTCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewJWTCookieSigner(&config.Config{})

	assert.Error(t, err)
}
