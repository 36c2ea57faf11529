package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 疎通確認用。ドメインロジックは持たない。
type TestHandler struct{}

// DI
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

type HelloResponse struct {
	Message string `json:"message"`
}

func (h *TestHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/test/hello", h.hello)
}

func (h *TestHandler) hello(c echo.Context) error {
	return c.JSON(http.StatusOK, HelloResponse{Message: "Hello from EShop API 🚀"})
}
