package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msitumum/pkg/params"
	svc "msitumum/pkg/prediction/service"
)

type PredictionCtrl struct{ s svc.PredictionService }

func New(s svc.PredictionService) *PredictionCtrl { return &PredictionCtrl{s: s} }

func (h *PredictionCtrl) ForPlanting(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.s.ForPlanting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PredictionCtrl) Summary(c echo.Context) error {
	siteID, err := params.OptionalUint(c, "site_id")
	if err != nil {
		return err
	}
	sum, err := h.s.Summary(c.Request().Context(), siteID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}
