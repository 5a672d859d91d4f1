package clinical

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
	api.GET("/procedures", h.ListProcedures)
	api.POST("/procedures", h.CreateProcedure)

	api.GET("/undergoes", h.ListUndergoes)
	api.POST("/undergoes", h.CreateUndergoes)
}

func (h *Handler) CreateProcedure(c echo.Context) error {
	var p Procedure
	if err := c.Bind(&p); err != nil {
		return err
	}
	if err := h.svc.CreateProcedure(c.Request().Context(), &p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListProcedures(c echo.Context) error {
	items, err := h.svc.ListProcedures(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Procedure{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateUndergoes(c echo.Context) error {
	var u Undergoes
	if err := c.Bind(&u); err != nil {
		return err
	}
	if err := h.svc.CreateUndergoes(c.Request().Context(), &u); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) ListUndergoes(c echo.Context) error {
	items, err := h.svc.ListUndergoes(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*UndergoesView{}
	}
	return c.JSON(http.StatusOK, items)
}
