package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the session cookie into a live session for every request.
type SessionMiddleware struct {
	sessions   usecase.SessionManager
	signer     service.CookieSigner
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(
	sessions usecase.SessionManager,
	signer service.CookieSigner,
	cfg *config.Config,
	logger *slog.Logger,
) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		signer:     signer,
		cookieName: cfg.Session.CookieName,
		secure:     cfg.IsProduction(),
		logger:     logger,
	}
}

// Load attaches the request's session. A missing, forged, expired or destroyed cookie gets
// a brand new anonymous session; old IDs are never revived.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolve(c)
		if err != nil {
			return err
		}

		if session == nil {
			session, err = m.sessions.Create(c.Request().Context())
			if err != nil {
				return errors.Wrap(err, "failed to start session")
			}
			if err := m.WriteCookie(c, session); err != nil {
				return err
			}
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

func (m *SessionMiddleware) resolve(c echo.Context) (*entity.Session, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	sessionID, err := m.signer.Verify(cookie.Value)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Ignoring invalid session cookie", slog.Any("error", err))

		return nil, nil
	}

	session, err := m.sessions.Load(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return session, nil
}

// WriteCookie issues the signed cookie for the session.
func (m *SessionMiddleware) WriteCookie(c echo.Context, session *entity.Session) error {
	value, err := m.signer.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return errors.Wrap(err, "failed to sign session cookie")
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(m.sessions.TTL() / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ClearCookie tells the client to drop the session cookie.
func (m *SessionMiddleware) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
