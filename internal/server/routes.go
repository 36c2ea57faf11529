package server

import "github.com/labstack/echo/v4"

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Test.RegisterRoutes(e)
	h.Users.RegisterRoutes(e)
	h.Categories.RegisterRoutes(e)
	h.Products.RegisterRoutes(e)
	h.Carts.RegisterRoutes(e)
	h.Orders.RegisterRoutes(e)
	h.Reviews.RegisterRoutes(e)
}
