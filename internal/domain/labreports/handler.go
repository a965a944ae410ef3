package labreports

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
	api.GET("/lab-reports", h.ListReports)
}

func (h *Handler) ListReports(c echo.Context) error {
	items := h.svc.List(ListOptions{
		Status: c.QueryParam("status"),
	})
	return c.JSON(http.StatusOK, items)
}
