package handler

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/catalog"
	"github.com/Minwook11/echo-tutorial/internal/params"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// UsersHandler serves the user demonstration routes. The fixed
// /users/me route must be registered alongside the parameterized
// /users/:user_id one; the router gives literal segments precedence
// regardless of declaration order.
type UsersHandler struct {
	Handler
}

// NewUsersHandler constructs a UsersHandler.
func NewUsersHandler(s *server.Server) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
	}
}

// ReadMe returns the fixed literal for the current user.
func (h *UsersHandler) ReadMe(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"user_id": "Me!",
	})
}

var readUserParams = params.Spec{
	{Name: "user_id", Source: params.SourcePath, Kind: params.KindString, Required: true},
}

// Read echoes the string user id from the path.
func (h *UsersHandler) Read(c echo.Context) error {
	v, err := readUserParams.Resolve(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"user_id": v.String("user_id"),
	})
}

// Create validates the posted user and returns it filtered through
// the UserOut response model: the credential never leaves the server.
func (h *UsersHandler) Create(c echo.Context, user *catalog.UserIn) (catalog.UserOut, error) {
	return user.Out(), nil
}
