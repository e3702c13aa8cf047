package handler

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/params"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// FilesHandler serves the catch-all path demo: the parameter captures
// the remainder of the URL, slashes included.
type FilesHandler struct {
	Handler
}

// NewFilesHandler constructs a FilesHandler.
func NewFilesHandler(s *server.Server) *FilesHandler {
	return &FilesHandler{
		Handler: NewHandler(s),
	}
}

var readFileParams = params.Spec{
	{Name: "file_path", Source: params.SourcePath, Kind: params.KindRemainder, Required: true},
}

// Read echoes the captured file path.
func (h *FilesHandler) Read(c echo.Context) error {
	v, err := readFileParams.Resolve(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"file_path": v.String("file_path"),
	})
}
