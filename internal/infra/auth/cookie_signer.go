package auth

import (
	"time"

	"userapi/config"
	"userapi/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidCookie is returned for any cookie value that was not produced by this signer
// or has expired.
var ErrInvalidCookie = errors.New("invalid session cookie")

// sessionClaims carries the session id inside the signed cookie.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// jwtCookieSigner signs session cookies as HS256 JWTs keyed by the session secret.
type jwtCookieSigner struct {
	secret []byte
	issuer string
}

// NewJWTCookieSigner is the constructor for jwtCookieSigner.
func NewJWTCookieSigner(cfg *config.Config) (service.CookieSigner, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtCookieSigner{
		secret: []byte(cfg.Session.Secret),
		issuer: cfg.Env.ServiceName,
	}, nil
}

// Sign creates a cookie value for the session that stops verifying at expiresAt.
func (s *jwtCookieSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session cookie")
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry, and returns the session id.
func (s *jwtCookieSigner) Verify(value string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errors.Wrap(ErrInvalidCookie, "verify session cookie")
	}
	if claims.SessionID == "" {
		return "", errors.Wrap(ErrInvalidCookie, "session cookie carries no session id")
	}

	return claims.SessionID, nil
}
