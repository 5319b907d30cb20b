package context

import (
	"userapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key of the session loaded for the current request.
const KeySession = "session"

// SetSession stores the request's session.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(KeySession, session)
}

// GetSession returns the request's session, or nil when the session middleware did not run.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}
