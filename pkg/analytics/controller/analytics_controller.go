package controller

import "github.com/labstack/echo/v4"

type AnalyticsController interface {
	Dashboard(c echo.Context) error
	SurvivalRates(c echo.Context) error
	FarmerProductivity(c echo.Context) error
	CostPerTree(c echo.Context) error
	ExportCostPerTree(c echo.Context) error
}
