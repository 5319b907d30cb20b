package handler

import (
	"log/slog"
	"net/http"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/delivery/http/middleware"
	"userapi/internal/delivery/http/response"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves login, logout and the login landing pages.
type AuthHandler struct {
	auth            usecase.Authenticator
	sessions        usecase.SessionManager
	cookies         *middleware.SessionMiddleware
	successRedirect string
	failureRedirect string
	logger          *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	auth usecase.Authenticator,
	sessions usecase.SessionManager,
	cookies *middleware.SessionMiddleware,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:            auth,
		sessions:        sessions,
		cookies:         cookies,
		successRedirect: cfg.Auth.SuccessRedirect,
		failureRedirect: cfg.Auth.FailureRedirect,
		logger:          logger,
	}
}

// Login binds the session to the account on success and redirects either way.
// Unknown email and wrong password take the same path.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	accountID, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if domainerrors.IsInvalidCredentials(err) {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Login rejected", slog.Any("reason", err))

			return c.Redirect(http.StatusFound, h.failureRedirect)
		}

		return errors.WithStack(err)
	}

	session := deliverycontext.GetSession(c)
	if session == nil {
		return errors.New("session middleware did not run")
	}

	bound, err := h.sessions.Bind(ctx, session.ID, accountID)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := h.cookies.WriteCookie(c, bound); err != nil {
		return err
	}
	deliverycontext.SetSession(c, bound)

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Login succeeded", slog.String("account_id", accountID.String()))

	return c.Redirect(http.StatusFound, h.successRedirect)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := deliverycontext.GetSession(c); session != nil {
		if err := h.sessions.Destroy(c.Request().Context(), session.ID); err != nil {
			return errors.WithStack(err)
		}
	}
	h.cookies.ClearCookie(c)

	return response.Success(c, http.StatusOK, map[string]bool{"isAuth": false}, "Logged out")
}

// LoginSucceeded is the landing page after a successful login.
func (h *AuthHandler) LoginSucceeded(c echo.Context) error {
	_, err := middleware.RequireAuthenticated(deliverycontext.GetSession(c))

	return response.Success(c, http.StatusOK, map[string]bool{"isAuth": err == nil}, "Login Successful")
}

// LoginFailed is the landing page after a rejected login.
func (h *AuthHandler) LoginFailed(c echo.Context) error {
	failure := domainerrors.ErrUnknownEmail

	return response.Error(c, failure.HTTPCode(), failure.ErrorCode(), failure.Message(), "")
}
