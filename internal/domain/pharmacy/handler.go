package pharmacy

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/pharmacy", h.ListItems)
	api.GET("/pharmacy/low-stock", h.GetLowStockSummary)
}

func (h *Handler) ListItems(c echo.Context) error {
	items := h.svc.List(ListOptions{
		StockStatus: c.QueryParam("stock_status"),
	})
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetLowStockSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.LowStock())
}
