package controller

import "github.com/labstack/echo/v4"

type MonitoringController interface {
	ListByPlanting(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
}
