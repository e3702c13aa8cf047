package handler

import (
	"time"

	"github.com/Minwook11/echo-tutorial/internal/middleware"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/Minwook11/echo-tutorial/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (ItemsHandler, UsersHandler, ...)
// so they can access shared resources via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine:
// the struct only contains a pointer field, so copies still point to
// the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// ResponseHandler defines how a successful handler result is written
// to the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured
	// logging, distinguishing handler types in logs.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for body-carrying
// handlers. It centralizes:
//
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - timing (validation duration, handler duration, total duration)
//   - response writing
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("path", path).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Error().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, error
// handling, logging, and response writing, returning an
// echo.HandlerFunc that can be registered directly on routes.
//
// Req is the request payload struct; a fresh *Req is allocated per
// request before binding, so no state leaks between requests.
//
// Usage:
//
//	router.POST("/x", handler.Handle(h, myHandlerFn, http.StatusCreated))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
