package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthsight/healthsight/internal/store"
)

// Handler exposes the demo-reset operation. The store is injected directly,
// there is no service layer to wrap a single call.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/admin/reset", h.ResetDemoData)
}

// ResetDemoData restores the compiled-in defaults and persists them.
func (h *Handler) ResetDemoData(c echo.Context) error {
	h.store.Reset(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
