package handler

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/catalog"
	"github.com/Minwook11/echo-tutorial/internal/params"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// ModelsHandler serves the enumerated path parameter demo: the model
// name must be a member of the closed set, enforced by the parameter
// spec before the handler body runs.
type ModelsHandler struct {
	Handler
}

// NewModelsHandler constructs a ModelsHandler.
func NewModelsHandler(s *server.Server) *ModelsHandler {
	return &ModelsHandler{
		Handler: NewHandler(s),
	}
}

var readModelParams = params.Spec{
	{
		Name:     "model_name",
		Source:   params.SourcePath,
		Kind:     params.KindEnum,
		Required: true,
		Enum:     catalog.ModelNames(),
	},
}

// Read returns the model name with its demonstration message.
func (h *ModelsHandler) Read(c echo.Context) error {
	v, err := readModelParams.Resolve(c)
	if err != nil {
		return err
	}

	name := catalog.ModelName(v.String("model_name"))

	return c.JSON(http.StatusOK, map[string]any{
		"model_name": name,
		"Message":    name.Message(),
	})
}
