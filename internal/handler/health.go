package handler

import (
	"net/http"
	"time"

	"github.com/Minwook11/echo-tutorial/internal/middleware"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that external systems
// (Kubernetes, uptime monitors, load balancers) can use to verify the
// service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status.
//
// The only dependency is the static in-memory item store, which
// cannot fail, so the check reports its size and the endpoint always
// answers 200 once the process is serving.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]any{
			"catalog": map[string]any{
				"status": "healthy",
				"items":  h.server.DB.Len(),
			},
		},
	}

	logger.Info().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
