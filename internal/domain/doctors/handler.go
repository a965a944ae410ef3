package doctors

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
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List())
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d, err := h.svc.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}
