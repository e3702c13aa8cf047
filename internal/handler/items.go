package handler

import (
	"net/http"

	"github.com/Minwook11/echo-tutorial/internal/catalog"
	"github.com/Minwook11/echo-tutorial/internal/params"
	"github.com/Minwook11/echo-tutorial/internal/server"
	"github.com/labstack/echo/v4"
)

// ItemsHandler serves the item demonstration routes: retrieval by
// integer id, paginated listing over the static list, and
// body-carrying create/update.
type ItemsHandler struct {
	Handler
}

// NewItemsHandler constructs an ItemsHandler.
func NewItemsHandler(s *server.Server) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
	}
}

// readItemParams: integer path id, optional free-text q, and a short
// flag defaulting to false. q has no default, so its omission
// propagates as absence instead of an empty string.
var readItemParams = params.Spec{
	{Name: "item_id", Source: params.SourcePath, Kind: params.KindInt, Required: true},
	{Name: "q", Source: params.SourceQuery, Kind: params.KindString},
	{Name: "short", Source: params.SourceQuery, Kind: params.KindBool, Default: false},
}

// Read returns the coerced item id, echoing q when supplied and a
// long description unless short was requested.
func (h *ItemsHandler) Read(c echo.Context) error {
	v, err := readItemParams.Resolve(c)
	if err != nil {
		return err
	}

	response := map[string]any{
		"item_id": v.Int("item_id"),
	}
	if v.Has("q") {
		response["q"] = v.String("q")
	}
	if !v.Bool("short") {
		response["description"] = "This is an amazing item that has a long description"
	}

	return c.JSON(http.StatusOK, response)
}

// listItemsParams: skip/limit slice the static list; both default
// rather than being required, and negatives are rejected.
var listItemsParams = params.Spec{
	{Name: "skip", Source: params.SourceQuery, Kind: params.KindInt, Default: 0, Min: params.Ptr(0.0)},
	{Name: "limit", Source: params.SourceQuery, Kind: params.KindInt, Default: 10, Min: params.Ptr(0.0)},
}

// List returns items[skip : skip+limit] of the static list.
func (h *ItemsHandler) List(c echo.Context) error {
	v, err := listItemsParams.Resolve(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.server.DB.List(v.Int("skip"), v.Int("limit")))
}

// Create validates the posted item and echoes it back with
// price_with_tax computed when tax is present and non-zero.
// Registered through the generic Handle pipeline, which owns binding
// and validation.
func (h *ItemsHandler) Create(c echo.Context, item *catalog.Item) (catalog.ItemOut, error) {
	item.Normalize()
	return item.Out(), nil
}

// updateItemParams: the path id always wins over any same-named query
// key; q is an optional query override.
var updateItemParams = params.Spec{
	{Name: "item_id", Source: params.SourcePath, Kind: params.KindInt, Required: true},
	{Name: "q", Source: params.SourceQuery, Kind: params.KindString},
}

// Update validates the item body, resolves the path id and optional q
// override, and echoes the merged result.
func (h *ItemsHandler) Update(c echo.Context, item *catalog.Item) (map[string]any, error) {
	v, err := updateItemParams.Resolve(c)
	if err != nil {
		return nil, err
	}

	item.Normalize()

	result := map[string]any{
		"item_id":     v.Int("item_id"),
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"tax":         item.Tax,
		"tagL":        item.TagL,
		"tagS":        item.TagS,
	}
	if item.Image != nil {
		result["image"] = item.Image
	}
	if v.Has("q") {
		result["q"] = v.String("q")
	}

	return result, nil
}
