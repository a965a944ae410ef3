package patients

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthsight/healthsight/internal/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
}

func (h *Handler) ListPatients(c echo.Context) error {
	items := h.svc.List(ListOptions{
		Type:  c.QueryParam("type"),
		Query: c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
