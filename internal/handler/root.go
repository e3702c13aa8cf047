package handler

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// RootHandler serves the welcome endpoint.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Read returns the fixed welcome object.
func (h *RootHandler) Read(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"Message": "Basic example of Echo",
	})
}
