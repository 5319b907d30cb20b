// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/delivery/http/middleware"
	"userapi/internal/delivery/http/response"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=100"`
	LastName string `json:"lastname" validate:"max=100"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"lastname" validate:"required,max=100"`
}

// UserHandler serves registration and the account endpoints.
type UserHandler struct {
	accounts usecase.AccountUsecase
	sessions usecase.SessionManager
	cookies  *middleware.SessionMiddleware
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	accounts usecase.AccountUsecase,
	sessions usecase.SessionManager,
	cookies *middleware.SessionMiddleware,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		sessions: sessions,
		cookies:  cookies,
		logger:   logger,
	}
}

// Register creates an account. It does not log the caller in.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(account), "User Created")
}

// Me returns the caller's account.
func (h *UserHandler) Me(c echo.Context) error {
	account, err := h.accounts.GetAccount(c.Request().Context(), middleware.AccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountViews(accounts), "")
}

// GetUserByID returns one account by its ID path parameter.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user id")
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// UpdateUser replaces the caller's name and last name.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.UpdateProfile(c.Request().Context(), middleware.AccountID(c), &usecase.UpdateProfileInput{
		Name:     req.Name,
		LastName: req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "User Updated")
}

// DeleteUser removes the caller's account and ends the session.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.accounts.DeleteAccount(ctx, middleware.AccountID(c)); err != nil {
		return errors.WithStack(err)
	}

	if session := deliverycontext.GetSession(c); session != nil {
		if err := h.sessions.Destroy(ctx, session.ID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to destroy session of deleted account",
				slog.Any("error", err),
			)
		}
	}
	h.cookies.ClearCookie(c)

	return response.Success(c, http.StatusOK, map[string]bool{"isAuth": false}, "User Deleted")
}
