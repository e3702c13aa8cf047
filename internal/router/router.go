// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/Minwook11/echo-tutorial/internal/handler"
	"github.com/Minwook11/echo-tutorial/internal/middleware"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// New assembles the Echo instance: global middleware, the global
// error funnel, and every route group.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	// Every error returned by any handler or middleware ends up here.
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context
	// enhancer builds the request-scoped logger, and the logger must
	// exist before the request logger emits its line.
	r.Use(mw.Global.Recover())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.CORS())
	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())

	registerAPIRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}
