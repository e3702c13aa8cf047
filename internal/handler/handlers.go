// Package handler is the first entry point for request logic after
// the router.
//
// Each handler declares its parameters up front (a params.Spec for
// path/query, a tagged request struct for bodies), resolves them
// through the shared validation machinery, and returns a plain
// response value. No validation logic lives in handler bodies.
package handler

import (
	"github.com/Minwook11/echo-tutorial/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Root    *RootHandler
	Items   *ItemsHandler
	Users   *UsersHandler
	Models  *ModelsHandler
	Files   *FilesHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Root:    NewRootHandler(s),
		Items:   NewItemsHandler(s),
		Users:   NewUsersHandler(s),
		Models:  NewModelsHandler(s),
		Files:   NewFilesHandler(s),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
