package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	mockSvc "userapi/internal/mocks/service"
	mockUsecase "userapi/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	mw       *SessionMiddleware
	sessions *mockUsecase.MockSessionManager
	signer   *mockSvc.MockCookieSigner
}

func createTestSessionMiddleware(t *testing.T, env string) sessionFixtures {
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "userapi.sid", ExpirationMs: 3_600_000}}
	cfg.Env.Env = env

	fx := sessionFixtures{
		sessions: mockUsecase.NewMockSessionManager(t),
		signer:   mockSvc.NewMockCookieSigner(t),
	}
	fx.mw = NewSessionMiddleware(fx.sessions, fx.signer, cfg, slog.New(slog.DiscardHandler))

	return fx
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: "userapi.sid", Value: value})
	}

	return req
}

func TestSessionMiddleware_LoadsExistingSession(t *testing.T) {
	fx := createTestSessionMiddleware(t, "local")
	e := echo.New()
	req := requestWithCookie("signed")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	existing := &entity.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}

	fx.signer.EXPECT().Verify("signed").Return("s1", nil)
	fx.sessions.EXPECT().Load(mock.Anything, "s1").Return(existing, nil)

	var seen *entity.Session
	err := fx.mw.Load(func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Same(t, existing, seen)
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestSessionMiddleware_MintsSessionWhenCookieUnusable(t *testing.T) {
	tests := []struct {
		name  string
		value string
		setup func(fx sessionFixtures)
	}{
		{name: "no cookie"},
		{
			name:  "forged cookie",
			value: "forged",
			setup: func(fx sessionFixtures) {
				fx.signer.EXPECT().Verify("forged").Return("", errors.New("invalid session cookie"))
			},
		},
		{
			name:  "destroyed session",
			value: "signed",
			setup: func(fx sessionFixtures) {
				fx.signer.EXPECT().Verify("signed").Return("old", nil)
				fx.sessions.EXPECT().Load(mock.Anything, "old").Return(nil, errors.WithStack(domainerrors.ErrSessionNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionMiddleware(t, "local")
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(requestWithCookie(tt.value), rec)
			fresh := &entity.Session{ID: "new", ExpiresAt: time.Now().Add(time.Hour)}

			if tt.setup != nil {
				tt.setup(fx)
			}
			fx.sessions.EXPECT().Create(mock.Anything).Return(fresh, nil)
			fx.sessions.EXPECT().TTL().Return(time.Hour)
			fx.signer.EXPECT().Sign("new", fresh.ExpiresAt).Return("new-signed", nil)

			var seen *entity.Session
			err := fx.mw.Load(func(c echo.Context) error {
				seen = deliverycontext.GetSession(c)

				return nil
			})(c)

			require.NoError(t, err)
			assert.Same(t, fresh, seen)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "userapi.sid", cookies[0].Name)
			assert.Equal(t, "new-signed", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.False(t, cookies[0].Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
			assert.Equal(t, 3600, cookies[0].MaxAge)
		})
	}
}

func TestSessionMiddleware_StorageFaultFailsRequest(t *testing.T) {
	fx := createTestSessionMiddleware(t, "local")
	e := echo.New()
	c := e.NewContext(requestWithCookie("signed"), httptest.NewRecorder())
	fault := domainerrors.NewDatabaseExecuteError(context.DeadlineExceeded, "failed to get session")

	fx.signer.EXPECT().Verify("signed").Return("s1", nil)
	fx.sessions.EXPECT().Load(mock.Anything, "s1").Return(nil, fault)

	err := fx.mw.Load(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionMiddleware_SecureCookieInProduction(t *testing.T) {
	fx := createTestSessionMiddleware(t, "production")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(""), rec)
	session := &entity.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}

	fx.sessions.EXPECT().TTL().Return(time.Hour)
	fx.signer.EXPECT().Sign("s1", session.ExpiresAt).Return("v", nil)

	require.NoError(t, fx.mw.WriteCookie(c, session))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestSessionMiddleware_ClearCookie(t *testing.T) {
	fx := createTestSessionMiddleware(t, "local")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(""), rec)

	fx.mw.ClearCookie(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
