package router

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes wires the demonstration routes.
//
// /users/me and /users/:user_id can be declared in any order: Echo's
// router matches literal segments before parameterized ones. The
// declaration order below mirrors the reading order of the tutorial.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Read)

	// Items: list and create live on the collection path (with and
	// without trailing slash), retrieval and update on the id path.
	r.GET("/items", h.Items.List)
	r.GET("/items/", h.Items.List)
	r.POST("/items/", handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated))
	r.GET("/items/:item_id", h.Items.Read)
	r.PUT("/items/:item_id", handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK))

	r.GET("/users/me", h.Users.ReadMe)
	r.GET("/users/:user_id", h.Users.Read)
	r.POST("/users/", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))

	r.GET("/models/:model_name", h.Models.Read)

	// Catch-all: the * segment captures the remainder of the URL,
	// slashes included.
	r.GET("/files/*", h.Files.Read)
}
