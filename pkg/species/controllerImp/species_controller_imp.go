package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msitumum/pkg/params"
	"msitumum/pkg/species/service"
)

type SpeciesCtrl struct{ s service.SpeciesService }

func New(s service.SpeciesService) *SpeciesCtrl { return &SpeciesCtrl{s} }

func (h *SpeciesCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SpeciesCtrl) Get(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	sp, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sp)
}
