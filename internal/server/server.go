package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"app/internal/handler"
)

type Handlers struct {
	Test       *handler.TestHandler
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Products   *handler.ProductHandler
	Carts      *handler.CartHandler
	Orders     *handler.OrderHandler
	Reviews    *handler.ReviewHandler
}

func Start(addr string, h Handlers) error {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	RegisterRoutes(e, h)

	return e.Start(addr)
}
