package appointments

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
	api.GET("/appointments", h.ListAppointments)
	api.GET("/appointments/:id", h.GetAppointment)
	api.POST("/appointments", h.CreateAppointment)
	api.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	items := h.svc.List(ListOptions{
		Status:   c.QueryParam("status"),
		DoctorID: c.QueryParam("doctor_id"),
		Type:     c.QueryParam("type"),
		Search:   c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	apt, err := h.svc.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, apt)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	apt, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, apt)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateAppointmentStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	apt, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, apt)
}
