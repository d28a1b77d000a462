package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"prodcat/internal/config"
	"prodcat/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", authHandler.Me)

	// Product catalog routes
	secured.GET("/products", productHandler.ListProducts)
	secured.GET("/products/:id", productHandler.GetProduct)
	secured.POST("/products", productHandler.CreateProduct)
	secured.PUT("/products/:id", productHandler.UpdateProduct)
	secured.DELETE("/products/:id", productHandler.DeleteProduct)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
