package admin

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
	api.GET("/departments", h.ListDepartments)
	api.POST("/departments", h.CreateDepartment)

	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
}

func (h *Handler) CreateDepartment(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return err
	}
	if err := h.svc.CreateDepartment(c.Request().Context(), &d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	items, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Department{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var r Room
	if err := c.Bind(&r); err != nil {
		return err
	}
	if err := h.svc.CreateRoom(c.Request().Context(), &r); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListRooms(c echo.Context) error {
	items, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Room{}
	}
	return c.JSON(http.StatusOK, items)
}
