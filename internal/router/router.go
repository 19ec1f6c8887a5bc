package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"toolhub/internal/apperr"
	"toolhub/internal/auth"
	"toolhub/internal/cache"
	"toolhub/internal/handler"
	"toolhub/internal/middleware"
	"toolhub/internal/repository"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Logger     zerolog.Logger
	JWTService *auth.JWTService
	TokenStore auth.TokenStoreInterface
	Users      repository.UserRepository
	Cache      *cache.Client
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Admin      *handler.AdminHandler
	Favorites  *handler.FavoritesHandler
	Comments   *handler.CommentHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, deps Deps) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apperr.EchoErrorHandler(deps.Logger)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", deps.Auth.Signup)
	api.POST("/auth/login", deps.Auth.Login)
	api.POST("/auth/google", deps.Auth.Google)
	api.POST("/auth/signout", deps.Auth.Signout)
	api.GET("/tools/:toolId/comments", deps.Comments.List)

	// Secured routes: token from the session cookie, then the account
	// resolved before any handler runs.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "cookie:" + auth.SessionCookieName,
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return deps.JWTService.ValidateToken(token)
			},
		}),
		middleware.CurrentUser(deps.Users, deps.TokenStore, deps.Cache),
	)

	secured.GET("/users/me", deps.User.Me)
	secured.PUT("/users/me", deps.User.Update)
	secured.DELETE("/users/me", deps.User.Delete)

	secured.POST("/favorites", deps.Favorites.Add)
	secured.DELETE("/favorites/:toolId", deps.Favorites.Remove)
	secured.GET("/favorites", deps.Favorites.List)

	secured.POST("/tools/:toolId/comments", deps.Comments.Create)

	secured.GET("/admin/users", deps.Admin.ListUsers)
	secured.DELETE("/admin/users/:userId", deps.Admin.DeleteUser)
	secured.PATCH("/admin/users/:userId/admin", deps.Admin.ToggleAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
