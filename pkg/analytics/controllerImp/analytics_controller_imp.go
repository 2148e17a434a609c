package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	svc "msitumum/pkg/analytics/service"
	"msitumum/pkg/params"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsCtrl struct{ s svc.AnalyticsService }

func New(s svc.AnalyticsService) *AnalyticsCtrl { return &AnalyticsCtrl{s: s} }

func (h *AnalyticsCtrl) Dashboard(c echo.Context) error {
	d, err := h.s.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *AnalyticsCtrl) SurvivalRates(c echo.Context) error {
	var q svc.SurvivalQuery
	var err error
	if q.SiteID, err = params.OptionalUint(c, "site_id"); err != nil {
		return err
	}
	if q.SpeciesID, err = params.OptionalUint(c, "species_id"); err != nil {
		return err
	}
	if q.Months, err = params.IntDefault(c, "period", 0); err != nil {
		return err
	}
	out, err := h.s.SurvivalRates(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) FarmerProductivity(c echo.Context) error {
	out, err := h.s.FarmerProductivity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) CostPerTree(c echo.Context) error {
	out, err := h.s.CostPerTree(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) ExportCostPerTree(c echo.Context) error {
	data, err := h.s.CostReport(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="cost-per-tree.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, data)
}
