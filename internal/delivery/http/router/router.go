// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userapi/internal/delivery/http/middleware"
	"userapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and route middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	AuthHandler       *handler.AuthHandler
	AvatarHandler     *handler.AvatarHandler
	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	session := r.params.SessionMiddleware.Load
	authenticated := r.params.GuardMiddleware.Authenticated
	anonymous := r.params.GuardMiddleware.Anonymous

	e.GET("/health", handler.HealthCheck)
	e.GET("/avatars/:filename", r.params.AvatarHandler.Serve)

	// Login landing pages
	e.GET("/success_login", r.params.AuthHandler.LoginSucceeded, session)
	e.GET("/unsuccess_login", r.params.AuthHandler.LoginFailed)

	userGroup := e.Group("/user", session)
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.AuthHandler.Login, anonymous)
		userGroup.GET("/logout", r.params.AuthHandler.Logout, authenticated)

		userGroup.GET("/me", r.params.UserHandler.Me, authenticated)
		userGroup.GET("/getallusers", r.params.UserHandler.ListUsers, authenticated)
		userGroup.GET("/getuserbyid/:userid", r.params.UserHandler.GetUserByID, authenticated)
		userGroup.PUT("/updateuser", r.params.UserHandler.UpdateUser, authenticated)
		userGroup.DELETE("/deleteuser", r.params.UserHandler.DeleteUser, authenticated)

		userGroup.PUT("/avatar", r.params.AvatarHandler.Upload, authenticated)
		userGroup.DELETE("/avatar/:filename", r.params.AvatarHandler.Delete, authenticated)
	}
}
