package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthenticated(t *testing.T) {
	accountID := uuid.New()
	live := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		session *entity.Session
		wantID  uuid.UUID
		wantErr error
	}{
		{name: "no session", session: nil, wantErr: domainerrors.ErrUnauthorized},
		{name: "anonymous", session: &entity.Session{ID: "s", ExpiresAt: live}, wantErr: domainerrors.ErrUnauthorized},
		{name: "expired", session: &entity.Session{ID: "s", AccountID: accountID, ExpiresAt: time.Now().Add(-time.Second)}, wantErr: domainerrors.ErrUnauthorized},
		{name: "authenticated", session: &entity.Session{ID: "s", AccountID: accountID, ExpiresAt: live}, wantID: accountID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := RequireAuthenticated(tt.session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRequireAnonymous(t *testing.T) {
	live := time.Now().Add(time.Hour)

	assert.NoError(t, RequireAnonymous(nil))
	assert.NoError(t, RequireAnonymous(&entity.Session{ID: "s", ExpiresAt: live}))
	assert.ErrorIs(t,
		RequireAnonymous(&entity.Session{ID: "s", AccountID: uuid.New(), ExpiresAt: live}),
		domainerrors.ErrAlreadyAuthenticated,
	)
}

func newGuard() *GuardMiddleware {
	return NewGuardMiddleware(&config.Config{Auth: &config.AuthConfig{SuccessRedirect: "/success_login"}})
}

func TestGuardMiddleware_Authenticated(t *testing.T) {
	accountID := uuid.New()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/user/me", nil), rec)
	deliverycontext.SetSession(c, &entity.Session{ID: "s", AccountID: accountID, ExpiresAt: time.Now().Add(time.Hour)})

	var seen uuid.UUID
	err := newGuard().Authenticated(func(c echo.Context) error {
		seen = AccountID(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, accountID, seen)
}

func TestGuardMiddleware_AuthenticatedRejectsAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/user/me", nil), httptest.NewRecorder())
	deliverycontext.SetSession(c, &entity.Session{ID: "s", ExpiresAt: time.Now().Add(time.Hour)})

	err := newGuard().Authenticated(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestGuardMiddleware_AnonymousRedirectsLoggedInCaller(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/user/login", nil), rec)
	deliverycontext.SetSession(c, &entity.Session{ID: "s", AccountID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)})

	err := newGuard().Anonymous(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/success_login", rec.Header().Get(echo.HeaderLocation))
}
