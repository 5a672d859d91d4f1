package nursing

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
	api.GET("/nurses", h.ListNurses)
	api.POST("/nurses", h.CreateNurse)
}

func (h *Handler) CreateNurse(c echo.Context) error {
	var n Nurse
	if err := c.Bind(&n); err != nil {
		return err
	}
	if err := h.svc.CreateNurse(c.Request().Context(), &n); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *Handler) ListNurses(c echo.Context) error {
	items, err := h.svc.ListNurses(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*NurseView{}
	}
	return c.JSON(http.StatusOK, items)
}
