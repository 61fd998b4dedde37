package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eanmble/internal/forms"
	"eanmble/internal/handler"
	"eanmble/internal/session"
)

// Register wires routes and middleware. GET routes carry names so handlers
// redirect by route, not by raw path strings.
func Register(
	e *echo.Echo,
	sessions *session.Manager,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(sessions.Middleware())

	e.Validator = &CustomValidator{validator: forms.NewValidator()}

	e.GET("/", pageHandler.Start)
	e.GET("/landing", pageHandler.Landing).Name = handler.RouteHome
	e.GET("/about", pageHandler.About)
	e.GET("/contact", pageHandler.Contact)

	e.GET("/login", authHandler.LoginPage).Name = handler.RouteLogin
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/register", authHandler.RegisterPage).Name = handler.RouteRegister
	e.POST("/register", authHandler.Register)

	e.GET("/admin", adminHandler.Admin).Name = handler.RouteAdmin
	e.POST("/admin", adminHandler.Approve)
	e.GET("/invalidate/:pred_id", adminHandler.Invalidate)

	e.GET("/users", userHandler.Predictions).Name = handler.RouteUsers
}

// CustomValidator wraps the forms validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
