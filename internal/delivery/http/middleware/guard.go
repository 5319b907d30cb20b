package middleware

import (
	"net/http"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequireAuthenticated admits only sessions with a bound account.
func RequireAuthenticated(session *entity.Session) (uuid.UUID, error) {
	if session == nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	accountID, ok := session.Principal(time.Now())
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return accountID, nil
}

// RequireAnonymous admits only sessions without a bound account.
func RequireAnonymous(session *entity.Session) error {
	if session == nil {
		return nil
	}

	if _, ok := session.Principal(time.Now()); ok {
		return errors.WithStack(domainerrors.ErrAlreadyAuthenticated)
	}

	return nil
}

// GuardMiddleware turns the guard predicates into route middleware.
// It must be used after SessionMiddleware.Load.
type GuardMiddleware struct {
	successRedirect string
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(cfg *config.Config) *GuardMiddleware {
	return &GuardMiddleware{successRedirect: cfg.Auth.SuccessRedirect}
}

// Authenticated rejects anonymous callers with 401 and exposes the account ID to handlers.
func (m *GuardMiddleware) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, err := RequireAuthenticated(deliverycontext.GetSession(c))
		if err != nil {
			return err
		}

		c.Set(KeyAccountID, accountID)

		return next(c)
	}
}

// Anonymous sends already logged-in callers to the success page instead of the handler.
func (m *GuardMiddleware) Anonymous(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := RequireAnonymous(deliverycontext.GetSession(c)); err != nil {
			return c.Redirect(http.StatusFound, m.successRedirect)
		}

		return next(c)
	}
}

// KeyAccountID is the echo.Context key of the authenticated account ID.
const KeyAccountID = "accountID"

// AccountID returns the ID stored by Authenticated.
func AccountID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(KeyAccountID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
