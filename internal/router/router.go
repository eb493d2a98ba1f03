package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lostfound/internal/auth"
	"lostfound/internal/config"
	"lostfound/internal/errors"
	"lostfound/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	itemHandler *handler.ItemHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	detectionHandler *handler.DetectionHandler,
	tokenStore auth.TokenStoreInterface,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Item routes
	api.GET("/items", itemHandler.ListItems)
	api.GET("/items/:id", itemHandler.GetItem)
	api.POST("/items", itemHandler.CreateItem)
	api.PATCH("/items/:id/status", itemHandler.UpdateStatus)
	api.DELETE("/items/:id", itemHandler.DeleteItem)

	// User routes
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/items", userHandler.GetUserItems)

	api.POST("/admins/login", adminHandler.Login)
	api.POST("/detections", detectionHandler.Detect)

	// Secured routes (require an admin JWT that has not been logged out)
	secured := api.Group("/admins",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHORIZED",
				})
			},
		}),
		handler.RevocationMiddleware(tokenStore),
	)

	secured.GET("/me", adminHandler.Me)
	secured.POST("/logout", adminHandler.Logout)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
